package game

import "strings"

// The default board: the Zurich old town as a 57-vertex undirected
// graph. The first NumTargets vertices are the target locations; the
// Boeg graph adds a handful of special-only shortcuts on top of the
// player edges.

const defaultPlayerGraphData = `u 57
0 49
0 56
1 12
1 33
2 5
2 13
2 42
3 4
3 41
3 46
4 7
4 34
4 48
4 53
5 15
5 17
5 27
6 23
6 34
7 14
7 46
8 21
8 54
9 20
9 21
9 25
10 38
10 45
10 48
11 40
11 43
11 50
12 30
13 32
14 50
15 19
15 42
15 51
16 38
16 54
17 36
17 39
18 30
18 38
18 50
19 29
19 36
19 45
20 28
20 49
20 52
21 44
21 56
22 31
22 38
22 47
23 29
23 37
24 31
24 48
25 41
26 27
26 31
26 32
26 51
28 43
28 46
29 37
29 47
29 51
30 44
31 33
31 37
32 52
33 36
35 36
35 42
35 53
36 41
37 52
39 55
40 49
43 52
44 48
44 49
44 55
46 53
50 56
`

const defaultBoegGraphData = `u 57
0 49
0 56
1 12
1 33
2 5
2 13
2 42
3 4
3 41
3 46
4 7
4 34
4 48
4 53
5 15
5 17
5 27
6 23
6 34
7 14
7 46
8 21
8 54
9 20
9 21
9 25
10 38
10 45
10 48
11 40
11 43
11 50
12 30
13 32
14 50
15 19
15 42
15 51
16 38
16 54
17 36
17 39
18 30
18 38
18 50
19 29
19 36
19 45
20 28
20 49
20 52
21 44
21 56
22 31
22 38
22 47
23 29
23 37
24 31
24 48
25 41
26 27
26 31
26 32
26 51
28 43
28 46
29 37
29 47
29 51
30 44
31 33
31 37
32 52
33 36
35 36
35 42
35 53
36 41
37 52
39 55
40 49
43 52
44 48
44 49
44 55
46 53
50 56
1 22 s
3 13 s
7 31 s
10 39 s
18 28 s
22 29 s
24 45 s
42 56 s
`

const defaultLocationsData = `762.1 125.4 Lindenhof
272.8 298.0 Grossmuenster
859.1 93.2 Fraumuenster
462.2 402.6 Paradeplatz
870.4 580.7 Bellevue
852.1 223.8 Central
430.4 276.8 Buerkliplatz
871.1 672.1 Hauptbahnhof
181.9 156.3 Rathaus
258.0 194.0 Muensterhof
495.9 428.8 Weinplatz
287.0 42.7 Rennweg
433.8 283.7 Augustinergasse
572.4 669.0 Bahnhofstrasse
689.1 380.2 Limmatquai
620.5 486.3 Niederdorf
90.8 633.7 Hirschenplatz
773.2 617.2 Neumarkt
790.0 299.0 Rindermarkt
415.0 108.3 Napfgasse
636.2 81.1 Spiegelgasse
103.3 177.8 Kirchgasse
192.6 264.4 Oberdorf
89.4 40.2 Hechtplatz
182.2 107.0 Ruedenplatz
381.8 56.8 Strehlgasse
861.9 445.3 Glockengasse
179.6 206.5 Pfalzgasse
366.5 280.3 Schipfe
155.5 600.3 Muehlegasse
973.5 347.6 Predigerplatz
494.8 96.7 Zaehringerplatz
136.1 266.1 Seilergraben
288.9 587.0 Hirschengraben
191.8 55.2 Obere Zaeune
933.9 388.6 Florhofgasse
177.8 398.5 Heimplatz
65.4 388.6 Kunsthaus
959.8 609.8 Stadelhofen
694.4 212.3 Sechselaeutenplatz
384.7 150.2 Opernhaus
765.6 391.5 Quaibruecke
772.3 257.6 Muensterbruecke
249.7 575.6 Rathausbruecke
965.8 602.7 Uraniastrasse
797.7 580.1 Werdmuehleplatz
735.5 189.6 Loewenplatz
526.6 274.7 Sihlporte
67.2 58.4 Boersenstrasse
302.7 211.1 Talacker
691.0 671.3 St. Peterhofstatt
460.4 658.4 Fortunagasse
968.8 670.3 Oetenbachgasse
382.8 185.5 Bahnhofquai
253.2 169.8 Walchebruecke
232.1 451.9 Leonhardsplatz
886.3 594.7 Polyterrasse
`

// DefaultBoard builds the BoardInfo for the built-in board.
func DefaultBoard() (*BoardInfo, error) {
	return NewBoardInfo(BoardSource{
		PlayerGraph: strings.NewReader(defaultPlayerGraphData),
		BoegGraph:   strings.NewReader(defaultBoegGraphData),
		Locations:   strings.NewReader(defaultLocationsData),
	})
}
