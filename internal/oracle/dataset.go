package oracle

// referencePlayers is the embedded authoritative dataset. It is a curated
// slice of league history rather than a complete roster dump: enough coverage
// that every generated grid has answers, small enough to ship in the binary.
var referencePlayers = []Player{
	{ID: "lebron-james", Name: "LeBron James", Teams: []string{"CLE", "MIA", "LAL"}, Position: "F", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, MVP: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 27.1, RPG: 7.5, APG: 7.4},
	{ID: "stephen-curry", Name: "Stephen Curry", Teams: []string{"GSW"}, Position: "G", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, MVP: true, Champion: true, AllStar: true, AllNBA: true, PPG: 24.8, RPG: 4.7, APG: 6.4},
	{ID: "kevin-durant", Name: "Kevin Durant", Teams: []string{"OKC", "GSW", "BKN", "PHX"}, Position: "F", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, MVP: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, PPG: 27.3, RPG: 7.0, APG: 4.4},
	{ID: "giannis-antetokounmpo", Name: "Giannis Antetokounmpo", Teams: []string{"MIL"}, Position: "F", Country: "Greece", Decades: []string{"2010s", "2020s"}, MVP: true, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 23.4, RPG: 9.8, APG: 4.9},
	{ID: "nikola-jokic", Name: "Nikola Jokic", Teams: []string{"DEN"}, Position: "C", Country: "Serbia", Decades: []string{"2010s", "2020s"}, MVP: true, Champion: true, AllStar: true, AllNBA: true, PPG: 20.9, RPG: 10.5, APG: 7.0},
	{ID: "luka-doncic", Name: "Luka Doncic", Teams: []string{"DAL", "LAL"}, Position: "G", Country: "Slovenia", Decades: []string{"2010s", "2020s"}, ROY: true, AllStar: true, AllNBA: true, PPG: 28.6, RPG: 8.7, APG: 8.3},
	{ID: "jayson-tatum", Name: "Jayson Tatum", Teams: []string{"BOS"}, Position: "F", Country: "USA", Decades: []string{"2010s", "2020s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 23.1, RPG: 7.2, APG: 3.5},
	{ID: "joel-embiid", Name: "Joel Embiid", Teams: []string{"PHI"}, Position: "C", Country: "Cameroon", Decades: []string{"2010s", "2020s"}, MVP: true, AllStar: true, AllNBA: true, PPG: 27.7, RPG: 11.0, APG: 3.6},
	{ID: "shai-gilgeous-alexander", Name: "Shai Gilgeous-Alexander", Teams: []string{"LAC", "OKC"}, Position: "G", Country: "Canada", Decades: []string{"2010s", "2020s"}, MVP: true, Champion: true, AllStar: true, AllNBA: true, PPG: 25.6, RPG: 4.8, APG: 5.3},
	{ID: "james-harden", Name: "James Harden", Teams: []string{"OKC", "HOU", "BKN", "PHI", "LAC"}, Position: "G", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, MVP: true, AllStar: true, AllNBA: true, PPG: 24.1, RPG: 5.6, APG: 7.1},
	{ID: "russell-westbrook", Name: "Russell Westbrook", Teams: []string{"OKC", "HOU", "WAS", "LAL", "LAC", "DEN"}, Position: "G", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, MVP: true, AllStar: true, AllNBA: true, PPG: 21.7, RPG: 7.1, APG: 8.1},
	{ID: "chris-paul", Name: "Chris Paul", Teams: []string{"NOP", "LAC", "HOU", "OKC", "PHX", "GSW", "SAS"}, Position: "G", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, ROY: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 17.5, RPG: 4.5, APG: 9.4},
	{ID: "damian-lillard", Name: "Damian Lillard", Teams: []string{"POR", "MIL"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, ROY: true, AllStar: true, AllNBA: true, PPG: 25.1, RPG: 4.2, APG: 6.7},
	{ID: "kyrie-irving", Name: "Kyrie Irving", Teams: []string{"CLE", "BOS", "BKN", "DAL"}, Position: "G", Country: "Australia", Decades: []string{"2010s", "2020s"}, ROY: true, Champion: true, AllStar: true, AllNBA: true, PPG: 23.5, RPG: 3.9, APG: 5.7},
	{ID: "anthony-davis", Name: "Anthony Davis", Teams: []string{"NOP", "LAL", "DAL"}, Position: "F", Country: "USA", Decades: []string{"2010s", "2020s"}, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 24.1, RPG: 10.6, APG: 2.5},
	{ID: "kawhi-leonard", Name: "Kawhi Leonard", Teams: []string{"SAS", "TOR", "LAC"}, Position: "F", Country: "USA", Decades: []string{"2010s", "2020s"}, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 19.9, RPG: 6.4, APG: 3.0},
	{ID: "jimmy-butler", Name: "Jimmy Butler", Teams: []string{"CHI", "MIN", "PHI", "MIA", "GSW"}, Position: "F", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 18.3, RPG: 5.3, APG: 4.3},
	{ID: "paul-george", Name: "Paul George", Teams: []string{"IND", "OKC", "LAC", "PHI"}, Position: "F", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 20.8, RPG: 6.3, APG: 3.7},
	{ID: "ja-morant", Name: "Ja Morant", Teams: []string{"MEM"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, ROY: true, AllStar: true, AllNBA: true, PPG: 22.5, RPG: 4.8, APG: 7.4},
	{ID: "devin-booker", Name: "Devin Booker", Teams: []string{"PHX"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllNBA: true, PPG: 24.1, RPG: 4.1, APG: 4.9},
	{ID: "trae-young", Name: "Trae Young", Teams: []string{"ATL"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllNBA: true, PPG: 25.5, RPG: 3.6, APG: 9.5},
	{ID: "donovan-mitchell", Name: "Donovan Mitchell", Teams: []string{"UTA", "CLE"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllNBA: true, PPG: 24.8, RPG: 4.4, APG: 4.7},
	{ID: "jalen-brunson", Name: "Jalen Brunson", Teams: []string{"DAL", "NYK"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllNBA: true, PPG: 20.5, RPG: 3.3, APG: 5.6},
	{ID: "victor-wembanyama", Name: "Victor Wembanyama", Teams: []string{"SAS"}, Position: "C", Country: "France", Decades: []string{"2020s"}, ROY: true, AllStar: true, AllDefensive: true, PPG: 22.4, RPG: 10.9, APG: 3.7},
	{ID: "michael-jordan", Name: "Michael Jordan", Teams: []string{"CHI", "WAS"}, Position: "G", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, MVP: true, DPOY: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 30.1, RPG: 6.2, APG: 5.3},
	{ID: "kobe-bryant", Name: "Kobe Bryant", Teams: []string{"LAL"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 25.0, RPG: 5.2, APG: 4.7},
	{ID: "shaquille-oneal", Name: "Shaquille O'Neal", Teams: []string{"ORL", "LAL", "MIA", "PHX", "CLE", "BOS"}, Position: "C", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, PPG: 23.7, RPG: 10.9, APG: 2.5},
	{ID: "tim-duncan", Name: "Tim Duncan", Teams: []string{"SAS"}, Position: "F", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 19.0, RPG: 10.8, APG: 3.0},
	{ID: "magic-johnson", Name: "Magic Johnson", Teams: []string{"LAL"}, Position: "G", Country: "USA", Decades: []string{"1980s", "1990s"}, MVP: true, Champion: true, AllStar: true, AllNBA: true, PPG: 19.5, RPG: 7.2, APG: 11.2},
	{ID: "larry-bird", Name: "Larry Bird", Teams: []string{"BOS"}, Position: "F", Country: "USA", Decades: []string{"1980s", "1990s"}, MVP: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 24.3, RPG: 10.0, APG: 6.3},
	{ID: "hakeem-olajuwon", Name: "Hakeem Olajuwon", Teams: []string{"HOU", "TOR"}, Position: "C", Country: "Nigeria", Decades: []string{"1980s", "1990s", "2000s"}, MVP: true, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 21.8, RPG: 11.1, APG: 2.5},
	{ID: "dirk-nowitzki", Name: "Dirk Nowitzki", Teams: []string{"DAL"}, Position: "F", Country: "Germany", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, Champion: true, AllStar: true, AllNBA: true, PPG: 20.7, RPG: 7.5, APG: 2.4},
	{ID: "dwyane-wade", Name: "Dwyane Wade", Teams: []string{"MIA", "CHI", "CLE"}, Position: "G", Country: "USA", Decades: []string{"2000s", "2010s"}, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 22.0, RPG: 4.7, APG: 5.4},
	{ID: "kevin-garnett", Name: "Kevin Garnett", Teams: []string{"MIN", "BOS", "BKN"}, Position: "F", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 17.8, RPG: 10.0, APG: 3.7},
	{ID: "allen-iverson", Name: "Allen Iverson", Teams: []string{"PHI", "DEN", "DET", "MEM"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, ROY: true, AllStar: true, AllNBA: true, PPG: 26.7, RPG: 3.7, APG: 6.2},
	{ID: "steve-nash", Name: "Steve Nash", Teams: []string{"PHX", "DAL", "LAL"}, Position: "G", Country: "Canada", Decades: []string{"1990s", "2000s", "2010s"}, MVP: true, AllStar: true, AllNBA: true, PPG: 14.3, RPG: 3.0, APG: 8.5},
	{ID: "charles-barkley", Name: "Charles Barkley", Teams: []string{"PHI", "PHX", "HOU"}, Position: "F", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, MVP: true, AllStar: true, AllNBA: true, PPG: 22.1, RPG: 11.7, APG: 3.9},
	{ID: "scottie-pippen", Name: "Scottie Pippen", Teams: []string{"CHI", "HOU", "POR"}, Position: "F", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 16.1, RPG: 6.4, APG: 5.2},
	{ID: "david-robinson", Name: "David Robinson", Teams: []string{"SAS"}, Position: "C", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, MVP: true, DPOY: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 21.1, RPG: 10.6, APG: 2.5},
	{ID: "john-stockton", Name: "John Stockton", Teams: []string{"UTA"}, Position: "G", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 13.1, RPG: 2.7, APG: 10.5},
	{ID: "karl-malone", Name: "Karl Malone", Teams: []string{"UTA", "LAL"}, Position: "F", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, MVP: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 25.0, RPG: 10.1, APG: 3.6},
	{ID: "patrick-ewing", Name: "Patrick Ewing", Teams: []string{"NYK", "SEA", "ORL"}, Position: "C", Country: "Jamaica", Decades: []string{"1980s", "1990s", "2000s"}, ROY: true, AllStar: true, AllNBA: true, PPG: 21.0, RPG: 9.8, APG: 1.9},
	{ID: "dennis-rodman", Name: "Dennis Rodman", Teams: []string{"DET", "SAS", "CHI", "LAL", "DAL"}, Position: "F", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, DPOY: true, Champion: true, AllStar: true, AllDefensive: true, PPG: 7.3, RPG: 13.1, APG: 1.8},
	{ID: "pau-gasol", Name: "Pau Gasol", Teams: []string{"MEM", "LAL", "CHI", "SAS", "MIL"}, Position: "C", Country: "Spain", Decades: []string{"2000s", "2010s"}, ROY: true, Champion: true, AllStar: true, AllNBA: true, PPG: 17.0, RPG: 9.2, APG: 3.2},
	{ID: "tony-parker", Name: "Tony Parker", Teams: []string{"SAS", "CHA"}, Position: "G", Country: "France", Decades: []string{"2000s", "2010s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 15.5, RPG: 2.7, APG: 5.6},
	{ID: "manu-ginobili", Name: "Manu Ginobili", Teams: []string{"SAS"}, Position: "G", Country: "Argentina", Decades: []string{"2000s", "2010s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 13.3, RPG: 3.5, APG: 3.8},
	{ID: "vince-carter", Name: "Vince Carter", Teams: []string{"TOR", "BKN", "ORL", "PHX", "DAL", "MEM", "SAC", "ATL"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s", "2010s", "2020s"}, ROY: true, AllStar: true, AllNBA: true, PPG: 16.7, RPG: 4.3, APG: 3.1},
	{ID: "tracy-mcgrady", Name: "Tracy McGrady", Teams: []string{"TOR", "ORL", "HOU", "NYK", "DET", "ATL", "SAS"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, AllStar: true, AllNBA: true, PPG: 19.6, RPG: 5.6, APG: 4.4},
	{ID: "jason-kidd", Name: "Jason Kidd", Teams: []string{"DAL", "PHX", "BKN", "NYK"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 12.6, RPG: 6.3, APG: 8.7},
	{ID: "gary-payton", Name: "Gary Payton", Teams: []string{"SEA", "MIL", "LAL", "BOS", "MIA"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s"}, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 16.3, RPG: 3.9, APG: 6.7},
	{ID: "dikembe-mutombo", Name: "Dikembe Mutombo", Teams: []string{"DEN", "ATL", "PHI", "BKN", "NYK", "HOU"}, Position: "C", Country: "DR Congo", Decades: []string{"1990s", "2000s"}, DPOY: true, AllStar: true, AllDefensive: true, PPG: 9.8, RPG: 10.3, APG: 1.0},
	{ID: "chris-bosh", Name: "Chris Bosh", Teams: []string{"TOR", "MIA"}, Position: "F", Country: "USA", Decades: []string{"2000s", "2010s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 19.2, RPG: 8.5, APG: 2.0},
	{ID: "klay-thompson", Name: "Klay Thompson", Teams: []string{"GSW", "DAL"}, Position: "G", Country: "USA", Decades: []string{"2010s", "2020s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 19.2, RPG: 3.5, APG: 2.3},
	{ID: "draymond-green", Name: "Draymond Green", Teams: []string{"GSW"}, Position: "F", Country: "USA", Decades: []string{"2010s", "2020s"}, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 8.6, RPG: 6.8, APG: 5.6},
	{ID: "carmelo-anthony", Name: "Carmelo Anthony", Teams: []string{"DEN", "NYK", "OKC", "HOU", "POR", "LAL"}, Position: "F", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, AllStar: true, AllNBA: true, PPG: 22.5, RPG: 6.2, APG: 2.7},
	{ID: "dwight-howard", Name: "Dwight Howard", Teams: []string{"ORL", "LAL", "HOU", "ATL", "CHA", "WAS", "PHI"}, Position: "C", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, DPOY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 15.7, RPG: 11.8, APG: 1.3},
	{ID: "ray-allen", Name: "Ray Allen", Teams: []string{"MIL", "SEA", "BOS", "MIA"}, Position: "G", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 18.9, RPG: 4.1, APG: 3.4},
	{ID: "paul-pierce", Name: "Paul Pierce", Teams: []string{"BOS", "BKN", "WAS", "LAC"}, Position: "F", Country: "USA", Decades: []string{"1990s", "2000s", "2010s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 19.7, RPG: 5.6, APG: 3.5},
	{ID: "reggie-miller", Name: "Reggie Miller", Teams: []string{"IND"}, Position: "G", Country: "USA", Decades: []string{"1980s", "1990s", "2000s"}, AllStar: true, AllNBA: true, PPG: 18.2, RPG: 3.0, APG: 3.0},
	{ID: "kareem-abdul-jabbar", Name: "Kareem Abdul-Jabbar", Teams: []string{"MIL", "LAL"}, Position: "C", Country: "USA", Decades: []string{"1970s", "1980s"}, MVP: true, ROY: true, Champion: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 24.6, RPG: 11.2, APG: 3.6},
	{ID: "rudy-gobert", Name: "Rudy Gobert", Teams: []string{"UTA", "MIN"}, Position: "C", Country: "France", Decades: []string{"2010s", "2020s"}, DPOY: true, AllStar: true, AllNBA: true, AllDefensive: true, PPG: 12.6, RPG: 11.7, APG: 1.3},
	{ID: "pascal-siakam", Name: "Pascal Siakam", Teams: []string{"TOR", "IND"}, Position: "F", Country: "Cameroon", Decades: []string{"2010s", "2020s"}, Champion: true, AllStar: true, AllNBA: true, PPG: 18.3, RPG: 6.8, APG: 4.0},
	{ID: "bam-adebayo", Name: "Bam Adebayo", Teams: []string{"MIA"}, Position: "C", Country: "USA", Decades: []string{"2010s", "2020s"}, AllStar: true, AllDefensive: true, PPG: 16.2, RPG: 8.9, APG: 3.7},
	{ID: "derrick-rose", Name: "Derrick Rose", Teams: []string{"CHI", "NYK", "CLE", "MIN", "DET", "MEM"}, Position: "G", Country: "USA", Decades: []string{"2000s", "2010s", "2020s"}, MVP: true, ROY: true, AllStar: true, AllNBA: true, PPG: 17.4, RPG: 3.2, APG: 5.2},
}
