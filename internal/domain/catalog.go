package domain

// DefaultGreetings is the built-in greeting catalog seeded into the
// greetings table on first launch. Keys are canonical Relationship values;
// {name} is substituted with the contact's name at pick time.
var DefaultGreetings = map[Relationship][]string{
	RelSon: {
		"Happy birthday, {name}! Watching you grow has been the greatest gift of all.",
		"To my son {name}: another year, another reason to be proud of you. Celebrate big!",
	},
	RelDaughter: {
		"Happy birthday, {name}! You light up every room you walk into. Enjoy your day!",
		"To my wonderful daughter {name}: may this year bring you everything you dream of.",
	},
	RelSister: {
		"Happy birthday, {name}! Lucky me, I got the best sister in the world.",
		"{name}, sisters like you deserve the biggest cake. Have an amazing day!",
	},
	RelBrother: {
		"Happy birthday, {name}! Partner in crime since day one. Make it a good one.",
		"To my brother {name}: may your year be as solid as you've always been for me.",
	},
	RelFriend: {
		"Happy birthday, {name}! Here's to more laughs, more adventures, more everything.",
		"{name}, friends make the good days better and the hard days easier. Cheers to you!",
	},
	RelNeighbor: {
		"Happy birthday, {name}! So glad fate put us on the same street.",
		"{name}, wishing the best neighbor around a fantastic celebration!",
	},
	RelBestFriend: {
		"Happy birthday, {name}! Best friend isn't a title, it's a lifetime appointment.",
		"{name}, you know all my stories and still stick around. Happiest of birthdays!",
	},
	RelBoyfriend: {
		"Happy birthday, {name}! Every day with you feels like a celebration already.",
		"{name}, you make my world brighter. Have the birthday you deserve!",
	},
	RelGirlfriend: {
		"Happy birthday, {name}! You're the best part of my every day.",
		"{name}, here's to you, to us, and to another beautiful year together.",
	},
	RelHusband: {
		"Happy birthday, {name}! Grateful every day that I get to share life with you.",
		"To my husband {name}: my favorite person, my favorite day. Happy birthday!",
	},
	RelFather: {
		"Happy birthday, {name}! Thank you for every lesson, spoken and unspoken.",
		"Dad, {name}, heroes don't always wear capes. Have a wonderful birthday!",
	},
	RelMother: {
		"Happy birthday, {name}! Everything good in me started with you.",
		"Mom, {name}, wishing you a day as warm as the love you give. Happy birthday!",
	},
	RelAuntie: {
		"Happy birthday, {name}! Aunties like you make family gatherings worth it.",
		"{name}, wishing my favorite auntie a day full of joy and cake!",
	},
	RelUncle: {
		"Happy birthday, {name}! Thanks for the jokes only an uncle could tell.",
		"{name}, have a birthday as legendary as your stories, uncle!",
	},
	RelCousin: {
		"Happy birthday, {name}! Cousins are the first friends we ever get.",
		"{name}, from childhood mischief to today: happy birthday, cousin!",
	},
	RelNiece: {
		"Happy birthday, {name}! Watching you grow up is a privilege. Enjoy your day!",
		"{name}, to the sweetest niece: may your year sparkle!",
	},
	RelNephew: {
		"Happy birthday, {name}! Proud of the person you're becoming.",
		"{name}, happy birthday to my favorite nephew. Go celebrate!",
	},
	RelGrandSon: {
		"Happy birthday, {name}! You carry the family's best forward.",
		"{name}, a grandson like you is a blessing counted twice. Happy birthday!",
	},
	RelGrandDaughter: {
		"Happy birthday, {name}! May your day be as bright as your smile.",
		"{name}, to a granddaughter who makes us endlessly proud: happy birthday!",
	},
	RelGrandFather: {
		"Happy birthday, {name}! Your stories are the family's treasure.",
		"Grandpa {name}, wishing you health, laughter, and a wonderful year ahead.",
	},
	RelGrandMother: {
		"Happy birthday, {name}! No one's hugs compare to a grandmother's.",
		"Grandma {name}, may your day be filled with everyone you love.",
	},
	RelGodFather: {
		"Happy birthday, {name}! Thank you for always watching over me.",
		"{name}, to a godfather who's been a true guide: have a great birthday!",
	},
	RelGodMother: {
		"Happy birthday, {name}! Your kindness has shaped who I am.",
		"{name}, wishing my dear godmother a birthday full of grace and joy.",
	},
}
