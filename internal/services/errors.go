package services

import (
	"errors"
	"fmt"

	"finance-tracker/internal/storage"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error - ошибка сервиса с категорией и сообщением для клиента
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает категорию ошибки; нетипизированные ошибки считаются внутренними
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func validationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func conflictError(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgPoolUnavailable    = "Failed to fetch connection from pool"
	MsgDuplicateUser      = "A user with that email already exists"
	MsgDuplicateTxn       = "Duplicate transaction entry"
)

// conflictMessages - сообщение о конфликте по таблице, где нарушена уникальность
var conflictMessages = map[string]string{
	storage.TableUsers:           MsgDuplicateUser,
	storage.TableCategories:      "Category already exists",
	storage.TableProducts:        "Product already exists",
	storage.TableProductPrices:   "Duplicate product price entry",
	storage.TableTags:            "Tag already exists",
	storage.TableTransactions:    MsgDuplicateTxn,
	storage.TableTransactionTags: MsgDuplicateTxn,
}

// storageError переводит ошибку единицы работы в *Error.
// action попадает в сообщение о неклассифицированной ошибке: "Failed to <action>: ...".
func storageError(err error, action string) error {
	if err == nil {
		return nil
	}

	var se *Error
	if errors.As(err, &se) {
		return se
	}

	if ce, ok := storage.AsConstraint(err); ok {
		if msg, found := conflictMessages[ce.Table]; found {
			return conflictError(msg, err)
		}
	}

	if errors.Is(err, storage.ErrConnUnavailable) {
		return &Error{Kind: KindUnavailable, Message: MsgPoolUnavailable, Err: err}
	}

	return &Error{Kind: KindInternal, Message: fmt.Sprintf("Failed to %s: %v", action, err)}
}
