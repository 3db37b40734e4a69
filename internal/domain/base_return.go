package domain

// BaseReturn is the uniform outcome envelope every auth operation produces.
// Code follows HTTP status semantics but stays a string on the wire
// ("200", "201", "400", "401", "500", "502"). Code and message are always
// both set; data is omitted when absent.
type BaseReturn[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// OK builds a populated success envelope.
func OK[T any](code, message string, data T) BaseReturn[T] {
	return BaseReturn[T]{Code: code, Message: message, Data: data}
}

// Fail builds a failure envelope with no payload.
func Fail[T any](code, message string) BaseReturn[T] {
	return BaseReturn[T]{Code: code, Message: message}
}
