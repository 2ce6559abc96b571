package seed

// Entry is one book of the bundled dataset. PublicationDate is YYYY-MM-DD.
type Entry struct {
	Title           string
	Author          string
	ISBN            string
	PublicationDate string
	Genre           string
	Description     string
}

// FamousBooks returns a fresh copy of the bundled catalog.
func FamousBooks() []Entry {
	return []Entry{
		{
			Title:           "Harry Potter and the Philosopher's Stone",
			Author:          "J.K. Rowling",
			ISBN:            "978-0747532699",
			PublicationDate: "1997-06-26",
			Genre:           "Fantasy",
			Description:     "The first book in the Harry Potter series follows young Harry as he discovers he is a wizard and begins his magical education at Hogwarts School of Witchcraft and Wizardry.",
		},
		{
			Title:           "Harry Potter and the Chamber of Secrets",
			Author:          "J.K. Rowling",
			ISBN:            "978-0747538493",
			PublicationDate: "1998-07-02",
			Genre:           "Fantasy",
			Description:     "Harry's second year at Hogwarts brings new challenges as the Chamber of Secrets is opened and students are being petrified by a mysterious monster.",
		},
		{
			Title:           "Harry Potter and the Prisoner of Azkaban",
			Author:          "J.K. Rowling",
			ISBN:            "978-0747542155",
			PublicationDate: "1999-07-08",
			Genre:           "Fantasy",
			Description:     "Harry learns about his past and faces the escaped prisoner Sirius Black, who is believed to be after him.",
		},
		{
			Title:           "1984",
			Author:          "George Orwell",
			ISBN:            "978-0451524935",
			PublicationDate: "1949-06-08",
			Genre:           "Dystopian Fiction",
			Description:     "A dystopian novel set in a totalitarian society ruled by Big Brother, exploring themes of surveillance, truth, and individual freedom.",
		},
		{
			Title:           "Animal Farm",
			Author:          "George Orwell",
			ISBN:            "978-0451526342",
			PublicationDate: "1945-08-17",
			Genre:           "Political Satire",
			Description:     "An allegorical novella about farm animals who rebel against their human farmer, hoping to create a society where animals can be equal, free, and happy.",
		},
		{
			Title:           "To Kill a Mockingbird",
			Author:          "Harper Lee",
			ISBN:            "978-0061120084",
			PublicationDate: "1960-07-11",
			Genre:           "Southern Gothic",
			Description:     "A coming-of-age story set in the American South, dealing with serious issues of rape and racial inequality through the eyes of young Scout Finch.",
		},
		{
			Title:           "The Great Gatsby",
			Author:          "F. Scott Fitzgerald",
			ISBN:            "978-0743273565",
			PublicationDate: "1925-04-10",
			Genre:           "American Literature",
			Description:     "A critique of the American Dream set in the Jazz Age, following the mysterious millionaire Jay Gatsby and his obsession with Daisy Buchanan.",
		},
		{
			Title:           "Pride and Prejudice",
			Author:          "Jane Austen",
			ISBN:            "978-0141439518",
			PublicationDate: "1813-01-28",
			Genre:           "Romance",
			Description:     "A romantic novel following Elizabeth Bennet as she navigates issues of manners, upbringing, morality, education, and marriage in Georgian England.",
		},
		{
			Title:           "Sense and Sensibility",
			Author:          "Jane Austen",
			ISBN:            "978-0141439662",
			PublicationDate: "1811-10-30",
			Genre:           "Romance",
			Description:     "The story of the Dashwood sisters, Elinor and Marianne, who represent \"sense\" and \"sensibility\" respectively, as they navigate love and heartbreak.",
		},
		{
			Title:           "The Old Man and the Sea",
			Author:          "Ernest Hemingway",
			ISBN:            "978-0684801223",
			PublicationDate: "1952-09-01",
			Genre:           "Literary Fiction",
			Description:     "The story of an aging Cuban fisherman who struggles with a giant marlin far out in the Gulf Stream off the coast of Cuba.",
		},
		{
			Title:           "A Farewell to Arms",
			Author:          "Ernest Hemingway",
			ISBN:            "978-0684837888",
			PublicationDate: "1929-09-27",
			Genre:           "War Fiction",
			Description:     "A semi-autobiographical novel about an American ambulance driver in the Italian army during World War I and his love affair with a British nurse.",
		},
		{
			Title:           "Murder on the Orient Express",
			Author:          "Agatha Christie",
			ISBN:            "978-0062693662",
			PublicationDate: "1934-01-01",
			Genre:           "Mystery",
			Description:     "Hercule Poirot investigates a murder aboard the famous Orient Express train, where every passenger becomes a suspect.",
		},
		{
			Title:           "And Then There Were None",
			Author:          "Agatha Christie",
			ISBN:            "978-0062073488",
			PublicationDate: "1939-11-06",
			Genre:           "Mystery",
			Description:     "Ten strangers are invited to an island where they are killed one by one, following the pattern of a sinister nursery rhyme.",
		},
		{
			Title:           "The Murder of Roger Ackroyd",
			Author:          "Agatha Christie",
			ISBN:            "978-0062073563",
			PublicationDate: "1926-06-01",
			Genre:           "Mystery",
			Description:     "Hercule Poirot investigates the murder of Roger Ackroyd in a case that revolutionized the mystery genre with its shocking twist.",
		},
		{
			Title:           "The Shining",
			Author:          "Stephen King",
			ISBN:            "978-0307743657",
			PublicationDate: "1977-01-28",
			Genre:           "Horror",
			Description:     "A family heads to an isolated hotel for the winter where a sinister presence influences the father into violence, while his psychic son sees horrific forebodings.",
		},
		{
			Title:           "It",
			Author:          "Stephen King",
			ISBN:            "978-1501142970",
			PublicationDate: "1986-09-15",
			Genre:           "Horror",
			Description:     "A group of children in a small town discover that their worst nightmares are real when they face an ancient evil that emerges every 27 years.",
		},
		{
			Title:           "Carrie",
			Author:          "Stephen King",
			ISBN:            "978-0307743664",
			PublicationDate: "1974-04-05",
			Genre:           "Horror",
			Description:     "Stephen King's first published novel tells the story of Carrie White, a teenage girl with telekinetic powers who is bullied at school and abused at home.",
		},
		{
			Title:           "The Hobbit",
			Author:          "J.R.R. Tolkien",
			ISBN:            "978-0547928227",
			PublicationDate: "1937-09-21",
			Genre:           "Fantasy",
			Description:     "Bilbo Baggins, a hobbit, is swept into an epic quest to reclaim the lost Dwarf Kingdom of Erebor from the fearsome dragon Smaug.",
		},
		{
			Title:           "The Fellowship of the Ring",
			Author:          "J.R.R. Tolkien",
			ISBN:            "978-0547928210",
			PublicationDate: "1954-07-29",
			Genre:           "Fantasy",
			Description:     "The first volume of The Lord of the Rings follows Frodo Baggins as he begins his quest to destroy the One Ring and defeat the Dark Lord Sauron.",
		},
		{
			Title:           "The Two Towers",
			Author:          "J.R.R. Tolkien",
			ISBN:            "978-0547928203",
			PublicationDate: "1954-11-11",
			Genre:           "Fantasy",
			Description:     "The second volume continues the epic journey as the Fellowship is broken and the members face their individual challenges in the war against Sauron.",
		},
		{
			Title:           "The Da Vinci Code",
			Author:          "Dan Brown",
			ISBN:            "978-0307474278",
			PublicationDate: "2003-03-18",
			Genre:           "Thriller",
			Description:     "Symbologist Robert Langdon investigates a murder in the Louvre and discovers a battle between the Priory of Sion and Opus Dei over the possibility of Jesus having been married.",
		},
		{
			Title:           "Angels & Demons",
			Author:          "Dan Brown",
			ISBN:            "978-0671027360",
			PublicationDate: "2000-05-01",
			Genre:           "Thriller",
			Description:     "Robert Langdon races against time to prevent the Illuminati from destroying Vatican City with a powerful new weapon - antimatter.",
		},
		{
			Title:           "The Alchemist",
			Author:          "Paulo Coelho",
			ISBN:            "978-0062315007",
			PublicationDate: "1988-01-01",
			Genre:           "Philosophical Fiction",
			Description:     "A young Andalusian shepherd travels from Spain to Egypt in search of a treasure, discovering the importance of following one's dreams.",
		},
		{
			Title:           "One Hundred Years of Solitude",
			Author:          "Gabriel García Márquez",
			ISBN:            "978-0060883287",
			PublicationDate: "1967-06-05",
			Genre:           "Magical Realism",
			Description:     "The multi-generational story of the Buendía family, whose patriarch founded the fictional town of Macondo, in the jungles of Colombia.",
		},
		{
			Title:           "Les Misérables",
			Author:          "Victor Hugo",
			ISBN:            "978-0451419439",
			PublicationDate: "1862-01-01",
			Genre:           "Historical Fiction",
			Description:     "Set in early 19th-century France, the novel follows the lives and interactions of several characters, particularly the struggles of ex-convict Jean Valjean and his path to redemption.",
		},
		{
			Title:           "The Hunchback of Notre-Dame",
			Author:          "Victor Hugo",
			ISBN:            "978-0140443530",
			PublicationDate: "1831-01-14",
			Genre:           "Gothic Fiction",
			Description:     "Set in medieval Paris, the story revolves around the beautiful gypsy Esmeralda, the hunchbacked bell-ringer Quasimodo, and the archdeacon Claude Frollo.",
		},
		{
			Title:           "War and Peace",
			Author:          "Leo Tolstoy",
			ISBN:            "978-0199232765",
			PublicationDate: "1869-01-01",
			Genre:           "Historical Fiction",
			Description:     "An epic novel that chronicles the French invasion of Russia and the impact of the Napoleonic era on Tsarist society through the stories of five Russian aristocratic families.",
		},
		{
			Title:           "Anna Karenina",
			Author:          "Leo Tolstoy",
			ISBN:            "978-0143035008",
			PublicationDate: "1877-01-01",
			Genre:           "Literary Fiction",
			Description:     "The tragic story of the married aristocrat Anna Karenina and her affair with the affluent Count Vronsky, which leads to her ultimate downfall.",
		},
		{
			Title:           "A Tale of Two Cities",
			Author:          "Charles Dickens",
			ISBN:            "978-0486406510",
			PublicationDate: "1859-11-26",
			Genre:           "Historical Fiction",
			Description:     "Set in London and Paris before and during the French Revolution, the novel tells the story of the French Doctor Manette and his daughter Lucie.",
		},
		{
			Title:           "Great Expectations",
			Author:          "Charles Dickens",
			ISBN:            "978-0141439563",
			PublicationDate: "1861-08-01",
			Genre:           "Bildungsroman",
			Description:     "The coming-of-age story of Pip, an orphan who rises from humble beginnings to wealth and status, only to learn valuable lessons about love and loyalty.",
		},
		{
			Title:           "Oliver Twist",
			Author:          "Charles Dickens",
			ISBN:            "978-0141439747",
			PublicationDate: "1838-01-01",
			Genre:           "Social Criticism",
			Description:     "The story of an orphan boy who escapes from a workhouse and falls in with a gang of juvenile pickpockets in London.",
		},
		{
			Title:           "The Adventures of Huckleberry Finn",
			Author:          "Mark Twain",
			ISBN:            "978-0486280615",
			PublicationDate: "1884-12-10",
			Genre:           "Adventure",
			Description:     "Huck Finn escapes his abusive father and travels down the Mississippi River with Jim, a runaway slave, in this classic American novel.",
		},
		{
			Title:           "The Adventures of Tom Sawyer",
			Author:          "Mark Twain",
			ISBN:            "978-0486400778",
			PublicationDate: "1876-01-01",
			Genre:           "Adventure",
			Description:     "The mischievous adventures of Tom Sawyer, a young boy growing up along the Mississippi River in the fictional town of St. Petersburg, Missouri.",
		},
		{
			Title:           "The Adventures of Sherlock Holmes",
			Author:          "Arthur Conan Doyle",
			ISBN:            "978-0486474915",
			PublicationDate: "1892-10-14",
			Genre:           "Mystery",
			Description:     "A collection of twelve short stories featuring the brilliant detective Sherlock Holmes and his loyal companion Dr. Watson.",
		},
		{
			Title:           "The Hound of the Baskervilles",
			Author:          "Arthur Conan Doyle",
			ISBN:            "978-0486282145",
			PublicationDate: "1902-04-01",
			Genre:           "Mystery",
			Description:     "Sherlock Holmes investigates the legend of a supernatural hound that haunts the Baskerville family on the foggy moors of Dartmoor.",
		},
		{
			Title:           "Crime and Punishment",
			Author:          "Fyodor Dostoevsky",
			ISBN:            "978-0486415871",
			PublicationDate: "1866-01-01",
			Genre:           "Psychological Fiction",
			Description:     "The psychological drama of Raskolnikov, a poor student who commits murder and then struggles with guilt and redemption.",
		},
		{
			Title:           "The Brothers Karamazov",
			Author:          "Fyodor Dostoevsky",
			ISBN:            "978-0374528379",
			PublicationDate: "1880-01-01",
			Genre:           "Philosophical Fiction",
			Description:     "The final novel by Dostoevsky explores deep philosophical and theological themes through the story of the Karamazov family.",
		},
		{
			Title:           "The Picture of Dorian Gray",
			Author:          "Oscar Wilde",
			ISBN:            "978-0486278070",
			PublicationDate: "1890-07-01",
			Genre:           "Gothic Fiction",
			Description:     "A young man sells his soul for eternal youth and beauty while his portrait ages and reflects his moral corruption.",
		},
		{
			Title:           "Dracula",
			Author:          "Bram Stoker",
			ISBN:            "978-0486411095",
			PublicationDate: "1897-05-26",
			Genre:           "Gothic Horror",
			Description:     "The classic vampire novel that introduced Count Dracula and established many conventions of subsequent vampire fantasy.",
		},
		{
			Title:           "Frankenstein",
			Author:          "Mary Shelley",
			ISBN:            "978-0486282114",
			PublicationDate: "1818-01-01",
			Genre:           "Gothic Science Fiction",
			Description:     "Victor Frankenstein creates a creature assembled from dead body parts, but the creature becomes a monster that haunts his creator.",
		},
		{
			Title:           "Twenty Thousand Leagues Under the Sea",
			Author:          "Jules Verne",
			ISBN:            "978-0486266299",
			PublicationDate: "1870-01-01",
			Genre:           "Science Fiction",
			Description:     "Professor Aronnax and his companions are taken prisoner aboard Captain Nemo's submarine Nautilus and experience incredible underwater adventures.",
		},
		{
			Title:           "Around the World in Eighty Days",
			Author:          "Jules Verne",
			ISBN:            "978-0486411118",
			PublicationDate: "1873-01-01",
			Genre:           "Adventure",
			Description:     "Phileas Fogg makes a bet that he can travel around the world in eighty days, leading to a thrilling race against time.",
		},
		{
			Title:           "The Time Machine",
			Author:          "H.G. Wells",
			ISBN:            "978-0486284729",
			PublicationDate: "1895-05-07",
			Genre:           "Science Fiction",
			Description:     "A Victorian scientist travels to the year 802,701 AD and discovers a world divided between the peaceful Eloi and the predatory Morlocks.",
		},
		{
			Title:           "The War of the Worlds",
			Author:          "H.G. Wells",
			ISBN:            "978-0486295060",
			PublicationDate: "1898-01-01",
			Genre:           "Science Fiction",
			Description:     "Martians invade Earth with advanced technology, causing widespread destruction until they are defeated by Earth's bacteria.",
		},
		{
			Title:           "Fahrenheit 451",
			Author:          "Ray Bradbury",
			ISBN:            "978-1451673319",
			PublicationDate: "1953-10-19",
			Genre:           "Dystopian Fiction",
			Description:     "In a future society where books are outlawed and burned, a fireman begins to question his role and the society he serves.",
		},
		{
			Title:           "Slaughterhouse-Five",
			Author:          "Kurt Vonnegut",
			ISBN:            "978-0440180296",
			PublicationDate: "1969-03-31",
			Genre:           "Anti-war Fiction",
			Description:     "Billy Pilgrim experiences time non-linearly, witnessing his own life including his experiences as a prisoner of war during the bombing of Dresden.",
		},
		{
			Title:           "One Flew Over the Cuckoo's Nest",
			Author:          "Ken Kesey",
			ISBN:            "978-0452284654",
			PublicationDate: "1962-02-01",
			Genre:           "Psychological Fiction",
			Description:     "Randle McMurphy, a new patient at a mental institution, clashes with the oppressive Nurse Ratched in this critique of institutional authority.",
		},
	}
}
