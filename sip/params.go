package sip

import (
	"io"
	"slices"
	"strings"
)

// HeaderParam is a single key/value pair inside a ";"-separated parameter
// list. A flag parameter (";lr") has HasValue == false.
type HeaderParam struct {
	Key      string
	Val      string
	HasValue bool
}

// HeaderParams is the ordered `;key=value` / `;key` parameter bag shared by
// URI parameters, URI headers-in-URI and every header that carries generic
// parameters (Via, From, To, Contact, Route, Record-Route, ...). Display
// preserves insertion order; equality and hashing do not (spec §3).
type HeaderParams []HeaderParam

func NewParams() HeaderParams {
	return make(HeaderParams, 0, 4)
}

func (hp HeaderParams) index(key string) int {
	for i, kv := range hp {
		if strings.EqualFold(kv.Key, key) {
			return i
		}
	}
	return -1
}

// Get returns a parameter's value, case-insensitive on the key.
func (hp HeaderParams) Get(key string) (string, bool) {
	if i := hp.index(key); i >= 0 {
		return hp[i].Val, true
	}
	return "", false
}

func (hp HeaderParams) GetOr(key, def string) string {
	if v, ok := hp.Get(key); ok {
		return v
	}
	return def
}

func (hp HeaderParams) Has(key string) bool { return hp.index(key) >= 0 }

// Add sets key=val, overwriting an existing value for key (case-insensitive).
func (hp *HeaderParams) Add(key, val string) {
	if i := hp.index(key); i >= 0 {
		(*hp)[i].Val = val
		(*hp)[i].HasValue = true
		return
	}
	*hp = append(*hp, HeaderParam{Key: key, Val: val, HasValue: true})
}

// AddFlag appends a value-less parameter such as ";lr".
func (hp *HeaderParams) AddFlag(key string) {
	if hp.index(key) >= 0 {
		return
	}
	*hp = append(*hp, HeaderParam{Key: key})
}

func (hp *HeaderParams) Remove(key string) {
	for {
		i := hp.index(key)
		if i < 0 {
			return
		}
		*hp = slices.Delete(*hp, i, i+1)
	}
}

func (hp HeaderParams) Len() int { return len(hp) }

func (hp HeaderParams) Clone() HeaderParams { return slices.Clone(hp) }

// ToString renders the params joined by sep, quoting any value that isn't a
// legal bare token.
func (hp HeaderParams) ToString(sep byte) string {
	var b strings.Builder
	hp.StringWrite(sep, &b)
	return b.String()
}

func (hp HeaderParams) StringWrite(sep byte, w io.StringWriter) {
	for i, kv := range hp {
		if i > 0 {
			w.WriteString(string(sep))
		}
		w.WriteString(kv.Key)
		if !kv.HasValue {
			continue
		}
		w.WriteString("=")
		if needsQuoting(kv.Val) {
			w.WriteString(quote(kv.Val))
		} else {
			w.WriteString(kv.Val)
		}
	}
}

// StringWriteCanonicalKeysOnly lowercases parameter names but leaves values
// exactly as parsed. Used by headers whose generic params can carry
// case-sensitive opaque tokens (Via's branch/received, To/From/Contact's
// tag, Route/Record-Route's generic extensions) where blanket value
// lowercasing would corrupt the token's identity.
func (hp HeaderParams) StringWriteCanonicalKeysOnly(sep byte, w io.StringWriter) {
	for i, kv := range hp {
		if i > 0 {
			w.WriteString(string(sep))
		}
		w.WriteString(strings.ToLower(kv.Key))
		if !kv.HasValue {
			continue
		}
		w.WriteString("=")
		if needsQuoting(kv.Val) {
			w.WriteString(quote(kv.Val))
		} else {
			w.WriteString(kv.Val)
		}
	}
}

// StringWriteCanonical renders generic extension-params the way §4.3
// requires: lowercase names always, lowercase values only where the value is
// a bare token (a value that needs quoting is left at whatever case it was
// parsed with, since quoted-string content is never case-normalized).
// Auth-params use StringWrite instead: several of their values (nonce,
// opaque, realm) are case-sensitive opaque data even when they happen not to
// require quoting, so they must never be run through this.
func (hp HeaderParams) StringWriteCanonical(sep byte, w io.StringWriter) {
	for i, kv := range hp {
		if i > 0 {
			w.WriteString(string(sep))
		}
		w.WriteString(strings.ToLower(kv.Key))
		if !kv.HasValue {
			continue
		}
		w.WriteString("=")
		if needsQuoting(kv.Val) {
			w.WriteString(quote(kv.Val))
		} else {
			w.WriteString(strings.ToLower(kv.Val))
		}
	}
}

// Equal checks two parameter bags for the same keys with the same values,
// independent of order (spec §3: "hash sorts by lowercased name/value";
// equality here is the plain unordered-map compare these sorted keys serve).
func (hp HeaderParams) Equal(other HeaderParams) bool {
	if len(hp) != len(other) {
		return false
	}
	for _, kv := range hp {
		ov, ok := other.Get(kv.Key)
		if !ok || ov != kv.Val {
			return false
		}
	}
	return true
}

// Hash sorts a clone by lowercased name then lowercased value so that
// Equal(a,b) implies Hash(a) == Hash(b).
func (hp HeaderParams) Hash() uint64 {
	type kv struct{ k, v string }
	pairs := make([]kv, len(hp))
	for i, p := range hp {
		pairs[i] = kv{strings.ToLower(p.Key), strings.ToLower(p.Val)}
	}
	slices.SortFunc(pairs, func(a, b kv) int {
		if a.k != b.k {
			return strings.Compare(a.k, b.k)
		}
		return strings.Compare(a.v, b.v)
	})
	h := offset64
	for _, p := range pairs {
		h = fnv1a(h, p.k)
		h = fnv1a(h, "=")
		h = fnv1a(h, p.v)
	}
	return h
}
