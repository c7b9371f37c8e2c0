package common

// RemoveSingleQuotesIfAny strips a pair of surrounding single quotes. Terminals wrap paths with spaces in them
// this way when a file is dropped into the window.
func RemoveSingleQuotesIfAny(str string) string {
	if len(str) >= 2 && str[0] == '\'' && str[len(str)-1] == '\'' {
		str = str[1 : len(str)-1]
	}
	return str
}

// RemoveDoubleQuotesIfAny see RemoveSingleQuotesIfAny
func RemoveDoubleQuotesIfAny(str string) string {
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	return str
}
