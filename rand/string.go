package rand

import "strings"

const strChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" // 62 characters

// StringFrom returns a string of count characters drawn uniformly, with
// replacement, from the positions of bag. The bag is decoded as runes, so
// multi-byte text is fine. Duplicate characters receive proportionally more
// weight; selection is uniform over positions, not distinct values, which is
// what makes weighted alphabets possible.
//
// A negative count fails with ErrInvalidLength (unlike the byte-count
// functions, which clamp). A count of zero returns "" without touching the
// generator.
func (r *Rand) StringFrom(bag string, count int) (string, error) {
	if count < 0 {
		return "", ErrInvalidLength
	}
	runes := []rune(bag)
	if len(runes) < 1 {
		return "", ErrEmptyBag
	}
	if uint64(len(runes)) > maxRange {
		return "", ErrBagTooLarge
	}
	if count == 0 {
		return "", nil
	}

	idx, err := r.Sample(uint64(len(runes)), count)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(count)
	for _, i := range idx {
		b.WriteRune(runes[i])
	}
	return b.String(), nil
}

// Str constructs a random alphanumeric string of the given length.
func (r *Rand) Str(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	return r.StringFrom(strChars, length)
}
