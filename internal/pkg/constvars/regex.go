package constvars

const (
	RegexSimpleEmail   = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexWalletAddress = `^0x[0-9a-fA-F]{40}$`
	RegexPositiveFloat = `^\d+(\.\d+)?$`
)
