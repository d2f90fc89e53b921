package requests

// WalletAuthPayload is the final payload returned by the wallet SDK after the
// user signs the sign-in message.
type WalletAuthPayload struct {
	Status    string `json:"status" validate:"required"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Address   string `json:"address" validate:"required_if=Status success,omitempty,wallet_address"`
	Version   int    `json:"version"`
	ErrorCode string `json:"error_code,omitempty"`
}

type Login struct {
	Payload           WalletAuthPayload `json:"payload"`
	Nonce             string            `json:"nonce" validate:"required,alphanum,min=8"`
	Username          *string           `json:"username"`
	ProfilePictureURL *string           `json:"profilePictureUrl" validate:"omitempty,url"`
}
