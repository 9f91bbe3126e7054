package entity

// MediaInputError reports an upload the media store refuses to accept.
// Its message is safe to show to the caller.
type MediaInputError struct {
	Msg string
}

func (e *MediaInputError) Error() string {
	return e.Msg
}

func NewMediaInputError(msg string) *MediaInputError {
	return &MediaInputError{Msg: msg}
}
