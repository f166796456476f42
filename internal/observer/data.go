package observer

// DataObserver is the union of both multiplexers for consumers that want a
// single subscription point. Holding it is equivalent to holding the two
// observers separately.
type DataObserver struct {
	Categories *CategoriesObserver
	Trackers   *TrackersObserver
}

func NewDataObserver(categories *CategoriesObserver, trackers *TrackersObserver) *DataObserver {
	return &DataObserver{Categories: categories, Trackers: trackers}
}

func (o *DataObserver) Close() {
	o.Categories.Close()
	o.Trackers.Close()
}
