package content

// Starter data inserted by the seed endpoints. seedQuestions is keyed by
// category name; the second value of each pair selects which demo user
// authors the question (0 or 1).
var seedCategoryNames = []string{"Dogs", "Cats", "Rabbits"}

var seedUsernames = [2]string{"demoUser1", "demoUser2"}

// seedPassword is the shared password of the demo accounts. It satisfies
// the registration rules so the accounts can log in.
const seedPassword = "demoPass123"

type seedQuestion struct {
	text   string
	author int
}

var seedQuestions = map[string][]seedQuestion{
	"Dogs": {
		{"What is the best dog breed for apartments?", 0},
		{"How often should I walk my dog?", 1},
		{"Why does my dog chew everything?", 0},
		{"How do I stop my dog from barking at night?", 1},
		{"What human foods are toxic to dogs?", 0},
	},
	"Cats": {
		{"Why does my cat knock things off tables?", 1},
		{"How often should I clean my cat's litter box?", 0},
		{"Why does my cat stare at walls?", 1},
		{"Is wet or dry food better for cats?", 0},
		{"Why does my cat knead blankets?", 1},
	},
	"Rabbits": {
		{"Can rabbits be litter trained?", 0},
		{"What vegetables are safe for rabbits?", 1},
		{"Do rabbits need vaccinations?", 0},
		{"Why does my rabbit thump its feet?", 1},
		{"Can rabbits live with other pets?", 0},
	},
}
