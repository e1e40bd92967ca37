package models

// ErrorResponse is the JSON error envelope used by the auth and booking
// endpoints: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
