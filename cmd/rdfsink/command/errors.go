package command

// UsageError reports a command line that cannot be executed. The usage text
// is printed with it.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }
