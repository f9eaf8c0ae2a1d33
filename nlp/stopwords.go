package nlp

// 内置停用词表。必须全部小写：停用词匹配发生在小写化之后，
// 是大小写敏感的精确匹配。

// stopwordsEn 是英文停用词。
var stopwordsEn = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"can't", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
	"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
	"from", "further", "had", "hadn't", "has", "hasn't", "have", "haven't",
	"having", "he", "he'd", "he'll", "he's", "her", "here", "here's", "hers",
	"herself", "him", "himself", "his", "how", "how's", "i", "i'd", "i'll",
	"i'm", "i've", "if", "in", "into", "is", "isn't", "it", "it's", "its",
	"itself", "let's", "me", "more", "most", "mustn't", "my", "myself", "no",
	"nor", "not", "of", "off", "on", "once", "only", "or", "other", "ought",
	"our", "ours", "ourselves", "out", "over", "own", "same", "shan't",
	"she", "she'd", "she'll", "she's", "should", "shouldn't", "so", "some",
	"such", "than", "that", "that's", "the", "their", "theirs", "them",
	"themselves", "then", "there", "there's", "these", "they", "they'd",
	"they'll", "they're", "they've", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "wasn't", "we", "we'd", "we'll",
	"we're", "we've", "were", "weren't", "what", "what's", "when", "when's",
	"where", "where's", "which", "while", "who", "who's", "whom", "why",
	"why's", "with", "won't", "would", "wouldn't", "you", "you'd", "you'll",
	"you're", "you've", "your", "yours", "yourself", "yourselves",
}

// stopwordsFr 是法文停用词。
// 词表按归一化后的形态收录：变音符号已折叠（meme、etre），
// 省音（c'、d'、l'、qu' 等）已在归一化第 6 步被剥离，无需收录。
var stopwordsFr = []string{
	"ai", "aie", "aient", "aies", "ait", "alors", "as", "au", "aucun",
	"aura", "aurai", "auraient", "aurais", "aurait", "auras", "aurez",
	"auriez", "aurions", "aurons", "auront", "aussi", "autre", "aux",
	"avaient", "avais", "avait", "avant", "avec", "avez", "aviez", "avions",
	"avoir", "avons", "ayant", "ayez", "ayons", "bon", "car", "ce", "ceci",
	"cela", "ces", "cet", "cette", "chaque", "chez", "comme", "comment",
	"dans", "de", "dedans", "dehors", "depuis", "des", "deux", "devrait",
	"doit", "donc", "dos", "du", "elle", "elles", "en", "encore", "es",
	"est", "et", "etaient", "etais", "etait", "etant", "ete", "etes",
	"etions", "etre", "eu", "eue", "eues", "eurent", "eus", "eusse",
	"eussent", "eusses", "eussiez", "eussions", "eut", "eux", "fois",
	"font", "furent", "fus", "fusse", "fussent", "fusses", "fussiez",
	"fussions", "fut", "hors", "ici", "il", "ils", "je", "juste", "la",
	"le", "les", "leur", "leurs", "lui", "ma", "maintenant", "mais", "me",
	"meme", "mes", "moi", "moins", "mon", "mot", "ne", "ni",
	"nommes", "non", "nos", "notre", "nous", "on", "ont", "ou", "par",
	"parce", "pas", "peu", "peut", "plupart", "pour", "pourquoi", "qu",
	"quand", "que", "quel", "quelle", "quelles", "quels", "qui", "sa",
	"sans", "se", "sera", "serai", "seraient", "serais", "serait", "seras",
	"serez", "seriez", "serions", "serons", "seront", "ses", "seulement",
	"si", "sien", "soi", "soient", "sois", "soit", "sommes", "son", "sont",
	"sous", "soyez", "soyons", "suis", "sur", "ta", "tandis", "tellement",
	"tels", "tes", "toi", "ton", "tous", "tout", "trop", "tres", "tu",
	"un", "une", "vont", "vos", "votre", "vous", "vu", "y",
}
