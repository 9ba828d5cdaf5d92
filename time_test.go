package custody_test

import (
	"testing"
	"time"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestUnixTimeConversion(t *testing.T) {
	moment := time.Date(2019, 4, 1, 10, 20, 30, 0, time.UTC)

	ut := custody.AsUnixTime(moment)
	assert.Equal(t, moment.Unix(), int64(ut))
	if !ut.Time().Equal(moment) {
		t.Fatalf("lossy conversion: %s != %s", ut.Time(), moment)
	}

	// sub-second precision is dropped
	precise := moment.Add(123 * time.Millisecond)
	assert.Equal(t, ut, custody.AsUnixTime(precise))
}

func TestUnixTimeAdd(t *testing.T) {
	ut := custody.UnixTime(100)

	assert.Equal(t, custody.UnixTime(160), ut.Add(time.Minute))
	assert.Equal(t, custody.UnixTime(40), ut.Add(-time.Minute))
	// durations below a second are ignored
	assert.Equal(t, ut, ut.Add(999*time.Millisecond))
}

func TestUnixTimeValidate(t *testing.T) {
	assert.Nil(t, custody.UnixTime(0).Validate())
	assert.Nil(t, custody.UnixTime(123456).Validate())

	if err := custody.UnixTime(-1).Validate(); !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    custody.UnixTime
		wantErr *errors.Error
	}{
		"number": {
			raw:  "1234567890",
			want: custody.UnixTime(1234567890),
		},
		"zero": {
			raw:  "0",
			want: custody.UnixTime(0),
		},
		"string time": {
			raw:  `"2019-04-01T10:20:30Z"`,
			want: custody.AsUnixTime(time.Date(2019, 4, 1, 10, 20, 30, 0, time.UTC)),
		},
		"negative number": {
			raw:     "-5",
			wantErr: errors.ErrInput,
		},
		"garbage": {
			raw:     `"not a time"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got custody.UnixTime
			err := got.UnmarshalJSON([]byte(tc.raw))
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("unexpected error: %+v", err)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
