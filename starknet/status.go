package starknet

type Status uint8

const (
	NotReceived Status = iota + 1
	Received
	Pending
	AcceptedOnL2
	AcceptedOnL1
	AcceptedOnchain
	Rejected
)

func (s Status) String() string {
	switch s {
	case NotReceived:
		return "NOT_RECEIVED"
	case Received:
		return "RECEIVED"
	case Pending:
		return "PENDING"
	case AcceptedOnL2:
		return "ACCEPTED_ON_L2"
	case AcceptedOnL1:
		return "ACCEPTED_ON_L1"
	case AcceptedOnchain:
		return "ACCEPTED_ONCHAIN"
	case Rejected:
		return "REJECTED"
	default:
		return "<unknown>"
	}
}

// IsFailure reports whether a transaction in this status carries a failure
// reason.
func (s Status) IsFailure() bool {
	return s == Rejected
}

// IsAccepted reports whether the transaction made it into a block, pending
// or not.
func (s Status) IsAccepted() bool {
	switch s {
	case Pending, AcceptedOnL2, AcceptedOnL1, AcceptedOnchain:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status can no longer change.
func (s Status) IsFinal() bool {
	switch s {
	case AcceptedOnL1, AcceptedOnchain, Rejected:
		return true
	default:
		return false
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if s < NotReceived || s > Rejected {
		return nil, malformedRequest("unknown Status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	switch str := string(data); str {
	case "NOT_RECEIVED":
		*s = NotReceived
	case "RECEIVED":
		*s = Received
	case "PENDING":
		*s = Pending
	case "ACCEPTED_ON_L2":
		*s = AcceptedOnL2
	case "ACCEPTED_ON_L1":
		*s = AcceptedOnL1
	case "ACCEPTED_ONCHAIN":
		*s = AcceptedOnchain
	case "REJECTED":
		*s = Rejected
	default:
		return malformedResponse("unknown Status %q", str)
	}
	return nil
}

// AddTransactionCode is the in-band result code of add_transaction. Codes
// the catalogue does not know are kept verbatim.
type AddTransactionCode string

const TransactionReceived AddTransactionCode = "TRANSACTION_RECEIVED"

type EntryPointType uint8

const (
	External EntryPointType = iota + 1
	L1Handler
	Constructor
)

func (t EntryPointType) String() string {
	switch t {
	case External:
		return "EXTERNAL"
	case L1Handler:
		return "L1_HANDLER"
	case Constructor:
		return "CONSTRUCTOR"
	default:
		return "<unknown>"
	}
}

func (t EntryPointType) MarshalText() ([]byte, error) {
	if t < External || t > Constructor {
		return nil, malformedRequest("unknown EntryPointType %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *EntryPointType) UnmarshalText(data []byte) error {
	switch str := string(data); str {
	case "EXTERNAL":
		*t = External
	case "L1_HANDLER":
		*t = L1Handler
	case "CONSTRUCTOR":
		*t = Constructor
	default:
		return malformedResponse("unknown EntryPointType %q", str)
	}
	return nil
}

// TransactionType is the discriminant of the Transaction union.
type TransactionType uint8

const (
	Invalid TransactionType = iota
	TxnDeploy
	TxnInvoke
)

func (t TransactionType) String() string {
	switch t {
	case TxnDeploy:
		return "DEPLOY"
	case TxnInvoke:
		return "INVOKE_FUNCTION"
	default:
		return "<unknown>"
	}
}

func (t TransactionType) MarshalText() ([]byte, error) {
	if t != TxnDeploy && t != TxnInvoke {
		return nil, malformedRequest("unknown TransactionType %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TransactionType) UnmarshalText(data []byte) error {
	switch str := string(data); str {
	case "DEPLOY":
		*t = TxnDeploy
	case "INVOKE", "INVOKE_FUNCTION":
		*t = TxnInvoke
	default:
		return malformedResponse("unknown TransactionType %q", str)
	}
	return nil
}
