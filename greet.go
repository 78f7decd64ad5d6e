// Package greet builds the library's welcome greeting for a name.
package greet

const (
	greetingPrefix = "Hello, "
	greetingSuffix = " ! Welcome to the library !!!"
)

// GreetName returns the greeting for name. The name is used as is.
func GreetName(name string) string {
	return greetingPrefix + name + greetingSuffix
}

// Greet is GreetName for callers holding an untyped value.
// Anything other than a string is rejected with an InvalidNameError.
func Greet(name any) (string, error) {
	s, ok := name.(string)
	if !ok {
		return "", NewInvalidNameError(name)
	}

	return GreetName(s), nil
}
