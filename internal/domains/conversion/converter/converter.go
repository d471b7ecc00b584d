package converter

import (
	"fmt"
	"time"
	"tzconv/internal/domains/conversion/model"
	"tzconv/shared/constant"
	"tzconv/shared/timezone"
)

// Resolver looks up a timezone identifier in the IANA database.
type Resolver interface {
	Resolve(id string) (*time.Location, error)
}

// Converter moves datetimes between named timezones. It holds no mutable
// state and is safe for concurrent use.
type Converter struct {
	zones Resolver
}

func New(zones Resolver) *Converter {
	return &Converter{zones: zones}
}

// Convert reads datetimeText in the source zone and expresses the same
// instant in the target zone. Naive input is read as wall-clock time in the
// source zone; input carrying an offset is an absolute instant.
//
// Every returned error is an *Error.
func (c *Converter) Convert(datetimeText, sourceID, targetID string) (model.Conversion, error) {
	var res model.Conversion

	switch {
	case datetimeText == constant.Empty:
		return res, newError(KindMissingField, "datetime", nil)
	case sourceID == constant.Empty:
		return res, newError(KindMissingField, "source_timezone", nil)
	case targetID == constant.Empty:
		return res, newError(KindMissingField, "target_timezone", nil)
	}

	stamp, err := Parse(datetimeText)
	if err != nil {
		return res, newError(KindInvalidDatetime, "datetime", err)
	}

	source, err := c.zones.Resolve(sourceID)
	if err != nil {
		return res, newError(KindUnknownTimezone, "source_timezone", err)
	}

	target, err := c.zones.Resolve(targetID)
	if err != nil {
		return res, newError(KindUnknownTimezone, "target_timezone", err)
	}

	var instant time.Time
	if stamp.Naive {
		instant = timezone.Localize(stamp.Time, source)
	} else {
		instant = stamp.Time.In(source)
	}

	converted := instant.In(target)

	for _, t := range []time.Time{instant, converted} {
		if err := checkYear(t); err != nil {
			return res, newError(KindConversion, constant.Empty, err)
		}
	}

	diff := timezone.OffsetAt(converted) - timezone.OffsetAt(instant)

	return model.Conversion{
		Source:     instant,
		Target:     converted,
		Timezone:   target.String(),
		Offset:     converted.Format(constant.UTCOffsetFormat),
		Difference: DifferenceLabel(diff),
	}, nil
}

// DifferenceLabel renders an offset delta as signed whole hours followed by
// the remaining whole minutes, e.g. "+5h 30m", "-3h", "0h". The minutes take
// the sign of the hours.
func DifferenceLabel(diff time.Duration) string {
	sign := constant.Empty

	switch {
	case diff > 0:
		sign = "+"
	case diff < 0:
		sign = "-"
		diff = -diff
	}

	label := fmt.Sprintf("%s%dh", sign, diff/time.Hour)

	if rem := diff % time.Hour; rem != 0 {
		label += fmt.Sprintf(" %dm", rem/time.Minute)
	}

	return label
}
