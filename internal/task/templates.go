package task

import (
	"time"

	"github.com/google/uuid"
)

// Template describes a task generated relative to the moving date.
type Template struct {
	Title          string
	Description    string
	Category       Category
	DaysBeforeMove int
}

// DefaultTemplates is the standard Dutch moving checklist, ordered
// from six weeks before the move to the days after it.
var DefaultTemplates = []Template{
	// 6 weken voor de verhuizing
	{
		Title:          "Verhuisbedrijf offertes aanvragen",
		Description:    "Vraag minimaal 3 offertes aan en vergelijk prijzen.",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 42,
	},
	{
		Title:          "Dozen en inpakmateriaal bestellen",
		Category:       CategoryInkopen,
		DaysBeforeMove: 42,
	},
	{
		Title:          "Uitzoeken wat mee gaat/weg kan",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 42,
	},

	// 4 weken
	{
		Title:          "Adreswijziging doorgeven aan gemeente",
		Description:    "Doe dit via MijnOverheid.nl of bij de gemeente.",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 28,
	},
	{
		Title:          "Energieleverancier informeren",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 28,
	},
	{
		Title:          "Internet opzeggen/verhuizen",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 28,
	},
	{
		Title:          "Werkgever informeren over verhuizing",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 28,
	},

	// 3 weken
	{
		Title:          "PostNL verhuisservice activeren",
		Description:    "Gratis service die post doorstuurt naar nieuw adres.",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 21,
	},
	{
		Title:          "Abonnementen adreswijziging",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 21,
	},

	// 2 weken
	{
		Title:          "Bank adreswijziging",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 14,
	},
	{
		Title:          "Verzekeringen aanpassen",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 14,
	},
	{
		Title:          "Begin met inpakken niet-essentiële spullen",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 14,
	},
	{
		Title:          "Huisarts/tandarts informeren",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 14,
	},

	// 1 week
	{
		Title:          "Koelkast legen en schoonmaken",
		Description:    "Koelkast moet 24u uit voordat die verhuisd wordt.",
		Category:       CategorySchoonmaken,
		DaysBeforeMove: 7,
	},
	{
		Title:          "Sleutels regelen nieuwe woning",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 7,
	},
	{
		Title:          "Wasmachine legen en voorbereiden",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 7,
	},
	{
		Title:          "Lampen en gordijnrails demonteren",
		Category:       CategoryKlussen,
		DaysBeforeMove: 7,
	},

	// Laatste dagen
	{
		Title:          "Koffer met essentials voor verhuisdag",
		Description:    "Toiletspullen, kleding, opladers, snacks, gereedschap.",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 3,
	},
	{
		Title:          "Waardevolle spullen apart houden",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 3,
	},

	// Verhuisdag
	{
		Title:          "Meterstanden oude woning noteren",
		Description:    "Maak foto's van gas, water en elektra meters.",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 0,
	},
	{
		Title:          "Meterstanden nieuwe woning noteren",
		Category:       CategoryAdministratie,
		DaysBeforeMove: 0,
	},
	{
		Title:          "Oude woning schoonmaken",
		Category:       CategorySchoonmaken,
		DaysBeforeMove: 0,
	},
	{
		Title:          "Sleuteloverdracht oude woning",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: 0,
	},

	// Na de verhuizing
	{
		Title:          "Dozen uitpakken - keuken eerst",
		Category:       CategoryVerhuizing,
		DaysBeforeMove: -1,
	},
	{
		Title:          "Internet aansluiting controleren",
		Category:       CategoryKlussen,
		DaysBeforeMove: -1,
	},
	{
		Title:          "Lampen ophangen",
		Category:       CategoryKlussen,
		DaysBeforeMove: -2,
	},
	{
		Title:          "Buren voorstellen",
		Category:       CategoryOverig,
		DaysBeforeMove: -3,
	},
}

// GenerateFromTemplates materializes templates into todo tasks for a
// project, with each deadline placed DaysBeforeMove days before the
// moving date.
func GenerateFromTemplates(projectID uuid.UUID, movingDate time.Time, templates []Template, now time.Time) []*Task {
	tasks := make([]*Task, 0, len(templates))

	for _, tmpl := range templates {
		deadline := movingDate.AddDate(0, 0, -tmpl.DaysBeforeMove)
		days := tmpl.DaysBeforeMove

		tasks = append(tasks, &Task{
			ProjectID:      projectID,
			Title:          tmpl.Title,
			Description:    tmpl.Description,
			Category:       tmpl.Category,
			Deadline:       &deadline,
			Status:         StatusTodo,
			IsTemplate:     true,
			DaysBeforeMove: &days,
			CreatedAt:      now,
		})
	}

	return tasks
}
