package booking

// TimeSlots is the fixed set of bookable sittings: lunch service
// 12:00-14:30 and dinner service 19:00-22:00, half-hour steps.
var TimeSlots = []string{
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00",
}

var slotSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(TimeSlots))
	for _, s := range TimeSlots {
		m[s] = struct{}{}
	}
	return m
}()

func IsTimeSlot(s string) bool {
	_, ok := slotSet[s]
	return ok
}
