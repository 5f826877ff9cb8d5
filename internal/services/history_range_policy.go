package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrHistoryFromDateInvalid = errors.New("history invalid from date")
	ErrHistoryToDateInvalid   = errors.New("history invalid to date")
	ErrHistoryRangeInvalid    = errors.New("history invalid range")
)

func ParseHistoryRange(rawFrom string, rawTo string, location *time.Location) (*time.Time, *time.Time, error) {
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)

	var from *time.Time
	if fromRaw != "" {
		parsedFrom, err := ParseDay(fromRaw, location)
		if err != nil {
			return nil, nil, ErrHistoryFromDateInvalid
		}
		from = &parsedFrom
	}

	var to *time.Time
	if toRaw != "" {
		parsedTo, err := ParseDay(toRaw, location)
		if err != nil {
			return nil, nil, ErrHistoryToDateInvalid
		}
		to = &parsedTo
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrHistoryRangeInvalid
	}

	return from, to, nil
}
