package f1

// Join inner-joins results with drivers on driverId and then with races on
// raceId. Output order follows results order; unmatched results are dropped.
func Join(drivers []Driver, results []Result, races []Race) []Record {
	byDriver := make(map[int]Driver, len(drivers))
	for _, d := range drivers {
		byDriver[d.ID] = d
	}
	byRace := make(map[int]Race, len(races))
	for _, r := range races {
		byRace[r.ID] = r
	}
	out := make([]Record, 0, len(results))
	for _, res := range results {
		d, ok := byDriver[res.DriverID]
		if !ok {
			continue
		}
		race, ok := byRace[res.RaceID]
		if !ok {
			continue
		}
		out = append(out, Record{
			DriverID:      res.DriverID,
			RaceID:        res.RaceID,
			ConstructorID: res.ConstructorID,
			Grid:          res.Grid,
			PositionOrder: res.PositionOrder,
			Points:        res.Points,
			Year:          race.Year,
			Round:         race.Round,
			RaceName:      race.Name,
			Forename:      d.Forename,
			Surname:       d.Surname,
			DOB:           d.DOB,
			Nationality:   d.Nationality,
		})
	}
	return out
}
