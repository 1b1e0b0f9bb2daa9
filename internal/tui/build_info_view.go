// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package tui

import (
	"strings"

	"github.com/mkarneev/homestock/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: HomeStock\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(info.Version))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.Date))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.Commit))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
