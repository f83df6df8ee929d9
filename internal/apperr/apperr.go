package apperr

import "errors"

// Kind é o conjunto fechado de categorias de erro que atravessam as camadas.
// O boundary HTTP mapeia Kind -> status de forma exaustiva; nunca por
// substring de mensagem.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthorization
	KindNotFound
	KindValidation
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code
}

func Unauthorized(code, message string) error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Validation(code, message string) error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func Internal(code, message string) error {
	return &Error{Kind: KindInternal, Code: code, Message: message}
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
