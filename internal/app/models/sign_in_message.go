package models

import "time"

// SignInMessage is a parsed EIP-4361 "Sign-In with Ethereum" message.
type SignInMessage struct {
	Domain         string
	Address        string
	Statement      string
	URI            string
	Version        string
	ChainID        string
	Nonce          string
	IssuedAt       time.Time
	ExpirationTime *time.Time
	NotBefore      *time.Time
	RequestID      string
}
