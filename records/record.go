package records

// Record is one flattened stop event, the unit of archived output.
// Field order is the parquet column order. Delay is the value reported by
// the API; DelayCalc is derived locally and nil when either timestamp is
// missing.
type Record struct {
	TripID        string   `parquet:"trip_id,optional" json:"trip_id"`
	LineName      string   `parquet:"line_name" json:"line_name"`
	Product       string   `parquet:"product" json:"product"`
	StationID     string   `parquet:"station_id" json:"station_id"`
	StationName   string   `parquet:"station_name" json:"station_name"`
	Direction     string   `parquet:"direction,optional" json:"direction"`
	ScheduledTime string   `parquet:"scheduled_time,optional" json:"scheduled_time"`
	ActualTime    string   `parquet:"actual_time,optional" json:"actual_time"`
	Delay         *int64   `parquet:"delay,optional" json:"delay"`
	DelayCalc     *float64 `parquet:"delay_calc,optional" json:"delay_calc"`
	Occupancy     string   `parquet:"occupancy,optional" json:"occupancy"`
	Remarks       string   `parquet:"remarks,optional" json:"remarks"`
}

// Table is an ordered batch of records sharing the archive schema.
type Table []Record
