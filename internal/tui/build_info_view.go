// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/loan-tracker/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: Loan Tracker\n")
	b.WriteString(strings.Join(info.Lines(), "\n"))

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}
