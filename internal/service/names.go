package service

// Name identifies a service in the closed vocabulary.
type Name string

const (
	Git        Name = "git"
	GitHub     Name = "github"
	Virtualenv Name = "virtualenv"
	Pytest     Name = "pytest"
	License    Name = "LICENSE"
	SetupCfg   Name = "setup.cfg"
	SetupNox   Name = "setup.nox"
)

// All returns every known service name in menu order.
func All() []Name {
	return []Name{Git, GitHub, Virtualenv, Pytest, License, SetupCfg, SetupNox}
}

// ParseName converts a string to a Name, returning false if it is not in the vocabulary.
func ParseName(s string) (Name, bool) {
	for _, n := range All() {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// Strings converts names to plain strings.
func Strings(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// Need marks a follow-up configuration artifact a service requires.
type Need string

const (
	NeedPytest Need = "pytest"
	NeedNox    Need = "nox"
)

// NeedsConfig is the ordered list of config needs recorded during dispatch.
type NeedsConfig []Need

// Has reports whether n was recorded.
func (nc NeedsConfig) Has(n Need) bool {
	for _, x := range nc {
		if x == n {
			return true
		}
	}
	return false
}
