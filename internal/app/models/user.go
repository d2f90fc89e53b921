package models

import (
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/responses"
)

type AuthenticatedUser struct {
	WalletAddress     string  `json:"walletAddress"`
	Username          *string `json:"username"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

// DisplayName returns the username, or the shortened wallet address when
// the user has none.
func (u AuthenticatedUser) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return ShortenWalletAddress(u.WalletAddress)
}

func ShortenWalletAddress(address string) string {
	if len(address) <= constvars.WalletAddressPrefixLen+constvars.WalletAddressSuffixLen {
		return address
	}
	return address[:constvars.WalletAddressPrefixLen] + constvars.WalletAddressEllipsis + address[len(address)-constvars.WalletAddressSuffixLen:]
}

func (u AuthenticatedUser) ConvertIntoResponse() responses.User {
	return responses.User{
		WalletAddress:     u.WalletAddress,
		Username:          u.Username,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}
