// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD and surface in the
// startup log and the /api/version/ endpoint.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the build metadata on one line, e.g. for `-version` output
// and the startup log entry.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version=%s date=%s commit=%s", orNA(a.buildVersion), orNA(a.buildDate), orNA(a.buildCommit))
}

// BuildInfoView is the JSON form of AppBuildInfo served by the control API.
type BuildInfoView struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// View returns the serialisable form of a.
func (a AppBuildInfo) View() BuildInfoView {
	return BuildInfoView{
		Version: orNA(a.buildVersion),
		Date:    orNA(a.buildDate),
		Commit:  orNA(a.buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
