package config

import (
	"fmt"
)

// StorageKeyStruct names every key the session layer persists.
type StorageKeyStruct struct {
	AccessToken  string
	RefreshToken string
	User         string
	// AuthRedirect is transient and never written to durable storage.
	AuthRedirect string
}

// SessionKeys returns the durable keys cleared on logout or 401.
func (r *StorageKeyStruct) SessionKeys() []string {
	return []string{r.AccessToken, r.RefreshToken, r.User}
}

// RedisKey returns the Redis key for a session field within a namespace
func (r *StorageKeyStruct) RedisKey(namespace, key string) string {
	return fmt.Sprintf("admin_session:%s:%s", namespace, key)
}

var StorageKey = &StorageKeyStruct{
	AccessToken:  "accessToken",
	RefreshToken: "refreshToken",
	User:         "user",
	AuthRedirect: "auth_redirect",
}
