package ddfield

// Upsert applies the last-write-wins rule to an ordered field list: if the
// key is already present its old pair is removed from its original position
// and the new pair is appended at the end.  Keys stay unique, order stays
// insertion order.
func Upsert(fields []Field, f Field) []Field {
	for i := range fields {
		if fields[i].Key == f.Key {
			fields = append(fields[:i], fields[i+1:]...)
			break
		}
	}
	return append(fields, f)
}

// Merge flattens a span chain (outermost span first) and then the event's
// own fields into a single ordered list with unique keys.  Later writers
// win ties: a descendant span overrides its ancestors and the event
// overrides every span, with the winning pair moving to the position of
// last write.
func Merge(chain [][]Field, event []Field) []Field {
	var merged []Field
	for _, span := range chain {
		for _, f := range span {
			merged = Upsert(merged, f)
		}
	}
	for _, f := range event {
		merged = Upsert(merged, f)
	}
	return merged
}
