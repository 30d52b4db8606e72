package content

var (
	HeroGreeting = `hello!`

	HeroName = `Yoonus`

	HeroRole = `Web Developer & Designer`

	HeroTagline = `Crafting digital experiences with clean code and creative design.
	Specializing in modern web technologies to build fast, responsive,
	and user-friendly applications.`

	AboutMe = `I'm a web developer who enjoys turning ideas into fast, accessible interfaces.
	I started with HTML and CSS, moved on to React and Node.js, and these days I spend most of my
	time building full-stack applications and polishing the small details that make a site feel right.
	Outside of client work I write about what I learn and keep a few side projects going.`

	ContactIntro = `Have a question, a project idea, or just want to say hello? Feel free to reach out.`

	FooterNote = `Designed and built with care. Always open to new ideas and collaborations.`
)
