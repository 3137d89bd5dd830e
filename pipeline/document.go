// SPDX-License-Identifier: MIT

package pipeline

import (
	"sort"

	"github.com/katalvlaran/ncd/converters"
	"github.com/katalvlaran/ncd/store"
)

// Document renders the run as a ResultDocument carrying its ID.
func (r *Run) Document() converters.ResultDocument {
	doc := converters.NewResultDocument(r.Algorithm, r.Result)
	doc.RunID = r.ID

	return doc
}

// RecordDocument rebuilds a ResultDocument from a persisted record.
// Communities are regrouped from the assignments in ascending label order.
func RecordDocument(rec *store.Record) converters.ResultDocument {
	doc := converters.ResultDocument{
		RunID:       rec.ID,
		Algorithm:   rec.Algorithm,
		Count:       rec.Count,
		Modularity:  rec.Modularity,
		Assignments: make(map[string]int, len(rec.Assignments)),
		Communities: make([][]string, rec.Count),
	}
	ids := make([]string, 0, len(rec.Assignments))
	for id, c := range rec.Assignments {
		doc.Assignments[id] = c
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		c := rec.Assignments[id]
		if c < 0 || c >= rec.Count {
			continue
		}
		doc.Communities[c] = append(doc.Communities[c], id)
	}

	return doc
}
