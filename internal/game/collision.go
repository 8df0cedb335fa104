package game

// Collision is an overlap found during detection. Records live for one tick.
type Collision struct {
	Monitor *Entity
	Other   *Entity
}

// Detect appends to dst every overlapping (monitor, other) pair, in entity
// order. Only entities with MonitorCollisions set are checked.
func Detect(entities []*Entity, dst []Collision) []Collision {
	for _, monitor := range entities {
		if !monitor.MonitorCollisions {
			continue
		}
		for _, other := range entities {
			if other == monitor {
				continue
			}
			if monitor.Overlaps(other) {
				dst = append(dst, Collision{Monitor: monitor, Other: other})
			}
		}
	}
	return dst
}
