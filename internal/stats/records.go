package stats

import "example.com/recap/internal/domain"

type recordSet struct {
	longestByDistance *ActivityRecord
	longestByDuration *ActivityRecord
	fastest           *ActivityRecord
	averageSpeed      float64
}

// calculateRecords runs three independent reductions over the activities
// with both positive distance and positive moving time: longest by distance,
// longest by moving time, and fastest by km/h. Ties keep the first activity
// encountered. With no qualifying activity all three records stay nil so the
// presentation layer null-guards instead of rendering zeros.
func calculateRecords(activities []domain.Activity) recordSet {
	moving := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Distance > 0 && a.MovingTime > 0 {
			moving = append(moving, a)
		}
	}
	if len(moving) == 0 {
		return recordSet{}
	}

	byDistance := moving[0]
	byDuration := moving[0]
	fastest := moving[0]
	fastestSpeed := speed(moving[0])

	var totalDistance, totalTime float64
	for _, a := range moving {
		totalDistance += a.Distance
		totalTime += a.MovingTime

		if a.Distance > byDistance.Distance {
			byDistance = a
		}
		if a.MovingTime > byDuration.MovingTime {
			byDuration = a
		}
		if s := speed(a); s > fastestSpeed {
			fastest = a
			fastestSpeed = s
		}
	}

	return recordSet{
		longestByDistance: toRecord(byDistance),
		longestByDuration: toRecord(byDuration),
		fastest:           toRecord(fastest),
		averageSpeed:      totalDistance / (totalTime / 3600),
	}
}

func speed(a domain.Activity) float64 {
	return a.Distance / (a.MovingTime / 3600)
}

func toRecord(a domain.Activity) *ActivityRecord {
	return &ActivityRecord{
		Distance:     a.Distance,
		Duration:     a.MovingTime,
		Date:         a.Date,
		ActivityType: a.Type,
		ActivityName: a.Name,
		AverageSpeed: speed(a),
	}
}

// calculatePowerStats summarises the activities that recorded average power;
// nil when none did.
func calculatePowerStats(activities []domain.Activity) *PowerStats {
	var sum, peak float64
	count := 0
	for _, a := range activities {
		if a.AveragePower <= 0 {
			continue
		}
		count++
		sum += a.AveragePower
		if a.AveragePower > peak {
			peak = a.AveragePower
		}
	}
	if count == 0 {
		return nil
	}
	return &PowerStats{
		AveragePower:             roundInt(sum / float64(count)),
		PeakPower:                roundInt(peak),
		TotalActivitiesWithPower: count,
	}
}

// calculateTemperatureRecords finds the single coldest and hottest outings
// among activities with a non-zero recorded temperature. Min/max reductions
// are stable: ties resolve to the first activity encountered. Without
// temperature data every field stays zero and ActivitiesWithTemp flags the
// feature off.
func calculateTemperatureRecords(activities []domain.Activity) TemperatureRecords {
	withTemp := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if a.AverageTemperature != 0 {
			withTemp = append(withTemp, a)
		}
	}
	if len(withTemp) == 0 {
		return TemperatureRecords{}
	}

	coldest := withTemp[0]
	hottest := withTemp[0]
	var sum float64
	for _, a := range withTemp {
		sum += a.AverageTemperature
		if a.AverageTemperature < coldest.AverageTemperature {
			coldest = a
		}
		if a.AverageTemperature > hottest.AverageTemperature {
			hottest = a
		}
	}

	return TemperatureRecords{
		Coldest: TemperatureReading{
			Temperature:  roundInt(coldest.AverageTemperature),
			Date:         coldest.Date,
			ActivityType: coldest.Type,
		},
		Hottest: TemperatureReading{
			Temperature:  roundInt(hottest.AverageTemperature),
			Date:         hottest.Date,
			ActivityType: hottest.Type,
		},
		AverageTemperature: roundInt(sum / float64(len(withTemp))),
		ActivitiesWithTemp: len(withTemp),
	}
}
