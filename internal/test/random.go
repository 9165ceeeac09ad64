package test

import "math/rand/v2"

const loginAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a pseudo-random alphanumeric string with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = loginAlphabet[rand.IntN(len(loginAlphabet))]
	}
	return string(buf)
}

// RandomLogins returns n distinct logins that all contain marker.
func RandomLogins(n int, marker string) []string {
	seen := make(map[string]bool, n)
	logins := make([]string, 0, n)
	for len(logins) < n {
		login := RandomASCIIString(2, 6) + marker + RandomASCIIString(2, 6)
		if seen[login] {
			continue
		}
		seen[login] = true
		logins = append(logins, login)
	}
	return logins
}
