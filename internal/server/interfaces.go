package server

// Server is the lifecycle contract for the blob server's transport layer.
//
// Implementations block in [Server.RunServer] until shutdown is requested and
// release their resources in [Server.Shutdown].
type Server interface {
	// RunServer starts accepting requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
