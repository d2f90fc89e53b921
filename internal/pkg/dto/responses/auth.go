package responses

type Nonce struct {
	Nonce string `json:"nonce"`
}

type User struct {
	WalletAddress     string  `json:"walletAddress"`
	Username          *string `json:"username"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

type Login struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	User      User   `json:"user"`
}

type Me struct {
	User User `json:"user"`
}
