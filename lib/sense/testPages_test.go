package sense

import "strings"

func pageLines(page string) []string {
	var lines []string
	for _, line := range strings.Split(page, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

var TestPageEmblematicize_parsed = `emblematicize (verb, 1)
d: To render (someone or something) emblematic.
	t: transitive
	e: to '''emblematicize''' a picture
	q: He drew the queen and the three eldest princesses, and prints were taken from his pictures, which he generally endeavoured to '''emblematicize''' by genii and Cupids.
`

var TestPageEmblematicize = `
<title>emblematicize</title>
<ns>0</ns>
<text bytes="1095" xml:space="preserve">==English==

===Etymology===
From {{suffix|en|emblematic|ize}}.

===Verb===
{{en-verb}}

# {{lb|en|transitive}} To [[render#Verb|render]] (someone or something) [[emblematic]].
#: {{ux|en|to '''emblematicize''' a picture}}
#* {{RQ:Walpole Painting in England|volume=IV|page=60|passage=He drew the queen and the three eldest princesses, and prints were taken from his pictures, which he generally endeavoured to '''emblematicize''' by genii and Cupids.}}

====Related terms====
* {{l|en|emblematize}}

[[Category:English terms suffixed with -ize]]</text>
`

var TestPageMateriate_parsed = `materiate (adjective, 1)
d: Consisting of matter; material
	t: obsolete
	q: After long enquiry of things immersed in matter, to interpose some subject which is immateriate, or less '''materiate'''; such as this of sounds.
`

var TestPageMateriate = `
<title>materiate</title>
<text xml:space="preserve">==English==

===Alternative forms===
* {{l|en|materiated}}

===Etymology===
{{uder|en|la|-}} {{lena}} {{m|la|materiatus}}.

===Adjective===
{{en-adj|-}}

# {{lb|en|obsolete}} Consisting of [[matter]]; [[material}}
#: {{ant|en|immateriate}}
#* {{RQ:Bacon Sylva Sylvarum|passage=After long enquiry of things immersed in matter, to interpose some subject which is immateriate, or less '''materiate'''; such as this of sounds.}}

===References===
*{{R:Webster 1913}}

==Latin==

===Participle===
{{head|la|participle form|head=māteriāte}}

# {{inflection of|la|māteriātus||voc|m|s}}</text>
`

var TestPagePhotonSphere = `
<title>photon sphere</title>
<text xml:space="preserve">==English==
{{wikipedia}}

===Noun===
{{en-noun}}

# {{lb|en|of a black hole}} A spherical limit around a [[black hole]] at which photons travel in a circular [[orbit]].
#: {{synonyms|en|photon circle|last photon orbit}}
#: {{usex|en|The radius of the '''photon sphere''' is also the lower bound for any stable orbit.}}
#* '''2017''', Lori Gardi, ''The Mandelbrot Set as a Quasi-Black Hole'', page 65,
#*: The boundary that separates the black hole from the '''photon sphere''' is referred to as the event horizon.
#* {{seeMoreCites}}

====Usage notes====
* The photon sphere is distinct from the [[event horizon]].</text>
`
