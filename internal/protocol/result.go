package protocol

// ResultKind tells the transport what to send back to the host
type ResultKind int

const (
	// ResultIgnored means the request was not recognized or failed validation,
	// the transport answers with a zero length response.
	ResultIgnored ResultKind = iota
	// ResultEmpty means the request was executed and has no payload
	ResultEmpty
	// ResultReply means the request was executed and Result.Reply holds the payload
	ResultReply
)

func (k ResultKind) String() string {
	switch k {
	case ResultIgnored:
		return "ignored"
	case ResultEmpty:
		return "empty"
	case ResultReply:
		return "reply"
	}
	return "unknown"
}

type Result struct {
	Kind  ResultKind
	Reply Reply
	// Cause is the reason of a ResultIgnored, or the error of the PWM peripheral for a ResultEmpty.
	// It is never sent to the host.
	Cause error
}

func Ignored(cause error) Result {
	return Result{Kind: ResultIgnored, Cause: cause}
}

func Empty() Result {
	return Result{Kind: ResultEmpty}
}

func Replied(reply Reply) Result {
	return Result{Kind: ResultReply, Reply: reply}
}

// Bytes returns the wire payload of the result, nil unless it is a ResultReply
func (r Result) Bytes() []byte {
	if r.Kind != ResultReply {
		return nil
	}
	return MarshalReply(r.Reply)
}
