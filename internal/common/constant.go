package common

const (
	// Metadata keys under which the credential is persisted locally.
	// Fixed names, restored verbatim at startup.
	MetaKeyAuthToken = "auth_token"
	MetaKeyUser      = "user"
)
