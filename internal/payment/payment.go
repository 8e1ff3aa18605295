package payment

// Status is the result token delivered to the payment callback. Payment
// processing itself happens elsewhere; only the outcome reaches us.
type Status string

const StatusSuccess Status = "success"

func ParseStatus(s string) Status {
	return Status(s)
}

// IsSuccess is true only for the exact "success" token.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

func (s Status) String() string {
	return string(s)
}
