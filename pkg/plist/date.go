package plist

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joshuapare/plistkit/internal/cplist"
)

// appleEpoch is 2001-01-01T00:00:00Z in Unix seconds. Dates are stored as
// an offset from it.
const appleEpoch = 978307200

const microsPerSecond = 1_000_000

// Date is a point in time with microsecond resolution, stored by libplist
// as a double holding seconds since 2001-01-01 UTC.
//
// Dates built with NewDate or NewDateUnixMicro read back exactly. Set,
// SetUnixMicro and ReplaceWith have to go through plist_set_date_val,
// which can only store the double nearest to sec+usec/1e6. When no such
// argument truncates back to the requested microsecond, the stored value
// reads back up to 1µs early.
type Date struct{ core }

// NewDate returns an owned date. t must fall within about 68 years of 2001.
func NewDate(t time.Time) *Date {
	return NewDateUnixMicro(t.UnixMicro())
}

// NewDateUnixMicro returns an owned date from microseconds since the Unix
// epoch.
func NewDateUnixMicro(us int64) *Date {
	sec, usec := splitUnixMicro(us)
	return &Date{core{rootHandle(newDateNode(sec, usec), KindDate)}}
}

// AsDate returns d itself.
func (d *Date) AsDate() (*Date, bool) { d.h.check(); return d, true }

// Time returns the stored instant in UTC.
func (d *Date) Time() time.Time {
	return time.UnixMicro(d.UnixMicro()).UTC()
}

// UnixMicro returns the stored instant as microseconds since the Unix epoch.
func (d *Date) UnixMicro() int64 {
	return joinUnixMicro(d.Raw())
}

// Raw returns the stored seconds and microseconds since 2001-01-01 UTC.
// Both parts carry the sign of the offset.
func (d *Date) Raw() (sec, usec int32) {
	d.h.check()
	return dateParts(d.h.node)
}

// Set overwrites the stored instant.
func (d *Date) Set(t time.Time) {
	d.SetUnixMicro(t.UnixMicro())
}

// SetUnixMicro overwrites the stored instant from microseconds since the
// Unix epoch.
func (d *Date) SetUnixMicro(us int64) {
	d.h.check()
	sec, usec := splitUnixMicro(us)
	setDate(d.h.node, sec, usec)
}

// splitUnixMicro converts to the engine's representation. Both parts carry
// the sign of the offset.
func splitUnixMicro(us int64) (sec, usec int32) {
	d := us - appleEpoch*microsPerSecond
	s, u := d/microsPerSecond, d%microsPerSecond
	if s < math.MinInt32 || s > math.MaxInt32 {
		panic(errors.AssertionFailedf("plist: date %d is outside the representable range", us))
	}
	return int32(s), int32(u)
}

// joinUnixMicro is the inverse of splitUnixMicro.
func joinUnixMicro(sec, usec int32) int64 {
	return (int64(sec)+appleEpoch)*microsPerSecond + int64(usec)
}

// dateParts reads a date node. The engine reports the microseconds of a
// pre-2001 date as a magnitude; they are given the sign of the seconds.
func dateParts(n cplist.Node) (sec, usec int32) {
	sec, usec = cplist.GetDate(n)
	if sec < 0 && usec > 0 {
		usec = -usec
	}
	return sec, usec
}

// newDateNode allocates a date that reads back as exactly (sec, usec). The
// node is decoded from a one-object binary plist carrying the double in the
// middle of the requested microsecond, which the engine's truncating reader
// maps back to it. Whole seconds are exact doubles and use plist_new_date.
func newDateNode(sec, usec int32) cplist.Node {
	if usec == 0 {
		return cplist.NewDate(sec, 0)
	}
	half := 0.5
	if sec < 0 || usec < 0 {
		half = -0.5
	}
	val := float64(sec) + float64(float64(usec)+half)/microsPerSecond

	b := make([]byte, 0, 50)
	b = append(b, "bplist00"...)
	b = append(b, 0x33) // date, 8 bytes
	b = binary.BigEndian.AppendUint64(b, math.Float64bits(val))
	b = append(b, 8) // offset table: object 0 at offset 8
	var trailer [32]byte
	trailer[6] = 1 // offset int size
	trailer[7] = 1 // object ref size
	binary.BigEndian.PutUint64(trailer[8:], 1)   // number of objects
	binary.BigEndian.PutUint64(trailer[24:], 17) // offset table offset
	b = append(b, trailer[:]...)

	n, res := cplist.FromBin(b)
	if res != cplist.Success || n == nil {
		n = cplist.NewDate(sec, dateArg(sec, usec))
	}
	return n
}

// setDate overwrites the date node n in place.
func setDate(n cplist.Node, sec, usec int32) {
	cplist.SetDate(n, sec, dateArg(sec, usec))
}

// dateArg picks the microseconds argument for plist_new_date and
// plist_set_date_val. It is usec unless that reads back a microsecond short
// and the next argument away from zero reads back exactly.
func dateArg(sec, usec int32) int32 {
	if s, u := engineDate(sec, usec); s == sec && u == usec {
		return usec
	}
	next := usec + 1
	if sec < 0 || usec < 0 {
		next = usec - 1
	}
	if s, u := engineDate(sec, next); s == sec && u == usec {
		return next
	}
	return usec
}

// engineDate computes what dateParts reports after plist_set_date_val(sec,
// usec): the engine stores sec+usec/1e6 as a double and reads the
// microseconds back by truncation.
func engineDate(sec, usec int32) (int32, int32) {
	val := float64(float64(sec) + float64(usec)/microsPerSecond)
	s := int32(val)
	frac := float64(val - float64(int64(val)))
	u := int32(math.Abs(float64(frac * microsPerSecond)))
	if s < 0 && u > 0 {
		u = -u
	}
	return s, u
}
