package entity

// Document is the single root aggregate persisted by the repository.
// Every entity in the system is reachable from here; there is no other
// durable state.
type Document struct {
	Users              []User                    `json:"users"`
	Sessions           map[string]Session        `json:"sessions"`
	Exercises          []Exercise                `json:"exercises"`
	Foods              []Food                    `json:"foods"`
	Records            []Record                  `json:"records"`
	WorkoutLogs        []WorkoutLog              `json:"workoutLogs"`
	DailyNutritionLogs []DailyNutritionLog       `json:"dailyNutritionLogs"`
	Posts              []Post                    `json:"posts"`
	AiConversations    map[string][]Conversation `json:"aiConversations"`
}

func (d *Document) UserById(id string) *User {
	for i := range d.Users {
		if d.Users[i].Id == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) UserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) PostById(id string) *Post {
	for i := range d.Posts {
		if d.Posts[i].Id == id {
			return &d.Posts[i]
		}
	}
	return nil
}
