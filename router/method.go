package router

import "strings"

// Method is a closed enumeration of the HTTP request methods the
// router dispatches on. Keeping it an enumeration rather than a free
// string lets the router iterate every known method exhaustively and
// index its per-method tables with a fixed-size array.
type Method uint8

// The supported HTTP methods.
const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodHead
	MethodPatch
	MethodTrace
	MethodConnect
	MethodOptions
)

// methodCount is the number of supported methods. Tables indexed by
// Method use it as their length.
const methodCount = int(MethodOptions) + 1

var methodNames = [methodCount]string{
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodDelete:  "DELETE",
	MethodHead:    "HEAD",
	MethodPatch:   "PATCH",
	MethodTrace:   "TRACE",
	MethodConnect: "CONNECT",
	MethodOptions: "OPTIONS",
}

// String returns the method token as defined by the HTTP
// specification, or the empty string for an out-of-range value.
func (m Method) String() string {
	if int(m) >= methodCount {
		return ""
	}
	return methodNames[m]
}

// ParseMethod converts an HTTP method token to its Method value.
// Matching is case-insensitive. It reports false for tokens outside
// the supported set.
func ParseMethod(token string) (Method, bool) {
	token = strings.ToUpper(token)
	for m := Method(0); int(m) < methodCount; m++ {
		if methodNames[m] == token {
			return m, true
		}
	}
	return 0, false
}

// Methods returns all supported methods in declaration order.
func Methods() []Method {
	all := make([]Method, methodCount)
	for i := range all {
		all[i] = Method(i)
	}
	return all
}
