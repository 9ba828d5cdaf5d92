package orm

import (
	"github.com/iov-one/custody"
)

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr custody.Iterator) ([]custody.Model, error) {
	defer itr.Close()

	var res []custody.Model
	for itr.Valid() {
		mod := custody.Pair(
			append([]byte(nil), itr.Key()...),
			append([]byte(nil), itr.Value()...),
		)
		res = append(res, mod)
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// queryPrefix returns all models in the database with the given key prefix
func queryPrefix(db custody.ReadOnlyKVStore, prefix []byte) ([]custody.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create
// and iterator over the whole prefixed domain
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte?
	for end[l] == 0 {
		if l == 0 {
			// all bytes are 0xff, whole range after prefix
			return prefix, nil
		}
		l--
		end[l]++
		end = end[:l+1]
	}
	return prefix, end
}
