package testcase

// validateTag rejects ordinary tags whose first character is not ASCII
// alphanumeric. Such names are reserved for special tag syntax.
func validateTag(tag string) bool {
	if tag == "" {
		return true
	}
	return isAlnum(tag[0])
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
