package hashbench

import (
	"fmt"
	"io"
)

// WriteResult writes the report block of r:
//
//	<blank line>
//	------ TEST WITH <N> ELEMENTS ------
//	Insertion time: <seconds> s
//	Lookup time: <seconds> s
//	Deletion time: <seconds> s
//
// Seconds have six decimals. Results of a table other than the built-in map
// carry its name in the header.
func WriteResult(w io.Writer, r Result) error {
	header := fmt.Sprintf("------ TEST WITH %d ELEMENTS ------", r.N)
	if r.Table != DefaultTable().Name {
		header = fmt.Sprintf("------ TEST WITH %d ELEMENTS (%s) ------", r.N, r.Table)
	}
	_, err := fmt.Fprintf(w,
		"\n%s\nInsertion time: %.6f s\nLookup time: %.6f s\nDeletion time: %.6f s\n",
		header,
		r.Insert.Seconds(),
		r.Lookup.Seconds(),
		r.Delete.Seconds(),
	)
	return err
}
