package orders

type AccountType int

const (
	// AccountTypeShortCover marks a buy that covers an existing short position.
	AccountTypeShortCover AccountType = iota + 1
)

func (a AccountType) Code() string {
	if a == AccountTypeShortCover {
		return "5"
	}

	return ""
}
