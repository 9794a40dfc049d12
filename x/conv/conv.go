// Package conv formats integers without fmt or strconv, which keeps them
// out of the firmware image.
package conv

import "golang.org/x/exp/constraints"

// AppendUint appends the decimal form of n to dst.
func AppendUint[T constraints.Unsigned](dst []byte, n T) []byte {
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	for {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
		if u == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// AppendInt appends the decimal form of n to dst, with a leading '-' when
// negative.
func AppendInt[T constraints.Signed](dst []byte, n T) []byte {
	v := int64(n)
	if v < 0 {
		dst = append(dst, '-')
		// Two's complement negation also covers math.MinInt64.
		return AppendUint(dst, uint64(-(v+1))+1)
	}
	return AppendUint(dst, uint64(v))
}

func Itoa[T constraints.Signed](n T) string   { return string(AppendInt(nil, n)) }
func Utoa[T constraints.Unsigned](n T) string { return string(AppendUint(nil, n)) }
