package content

// Default returns the portfolio's records. Each call returns a fresh copy.
func Default() *Site {
	return &Site{
		Hero: Hero{
			Greeting: HeroGreeting,
			Name:     HeroName,
			Role:     HeroRole,
			Tagline:  HeroTagline,
		},
		AboutMe: AboutMe,
		Skills: []SkillCategory{
			{
				Key: "frontend", Title: "Frontend", Color: "#6e45e2",
				Skills: []Skill{
					{Name: "React", Level: 90, Icon: "⚛️"},
					{Name: "JavaScript", Level: 70, Icon: "📜"},
					{Name: "HTML/CSS", Level: 95, Icon: "🎨"},
					{Name: "Material-UI", Level: 85, Icon: "🧩"},
					{Name: "Tailwind CSS", Level: 80, Icon: "🌀"},
				},
			},
			{
				Key: "backend", Title: "Backend", Color: "#88d3ce",
				Skills: []Skill{
					{Name: "Node.js", Level: 70, Icon: "🟢"},
					{Name: "Express", Level: 70, Icon: "🚂"},
					{Name: "REST APIs", Level: 60, Icon: "🔗"},
				},
			},
			{
				Key: "design", Title: "UI/UX", Color: "#ff7e5f",
				Skills: []Skill{
					{Name: "UI/UX", Level: 70, Icon: "✨"},
					{Name: "Figma", Level: 50, Icon: "✏️"},
					{Name: "Adobe XD", Level: 50, Icon: "🖌️"},
					{Name: "Responsive Design", Level: 80, Icon: "📱"},
				},
			},
			{
				Key: "tools", Title: "Tools & DB", Color: "#2196f3",
				Skills: []Skill{
					{Name: "GitHub", Level: 85, Icon: "🐙"},
					{Name: "MySQL", Level: 70, Icon: "🗃️"},
					{Name: "MongoDB", Level: 70, Icon: "🍃"},
				},
			},
		},
		Education: []Education{
			{
				ID:          "mca",
				Degree:      "MCA (Computer Applications)",
				Institution: "Jamal Mohamed College (Autonomous)",
				Period:      "2023 - 2025",
				Achievements: []string{
					"Graduated with honors",
					"Published research paper on AI applications",
					"Lead developer for college tech fest",
				},
			},
			{
				ID:          "bsc",
				Degree:      "BSc in Computer Science",
				Institution: "Jamal Mohamed College (Autonomous)",
				Period:      "2020 - 2023",
				Achievements: []string{
					"Specialized in Web Technologies",
					"Class representative for CS department",
				},
			},
		},
		Experience: []Experience{
			{
				ID:      "codetech",
				Role:    "Web Developer",
				Company: "CodeTech IT Solutions",
				Period:  "April 2025 - May 2025",
				Responsibilities: []string{
					"Developed responsive web applications using React and Node.js",
					"Optimized application performance by 40%",
				},
				Skills: []string{"React", "Node.js", "MongoDB", "Express.js", "GitHub"},
			},
			{
				ID:      "freelance",
				Role:    "Freelance Developer",
				Company: "Freelance",
				Period:  "Jan 2025 - May 2025",
				Responsibilities: []string{
					"Designed responsive UIs using React and Material-UI",
					"Integrated animations with Framer Motion",
				},
				Skills: []string{"React.js", "JavaScript", "Material-UI", "Tailwind CSS", "Framer Motion", "HTML5", "CSS3"},
			},
		},
		Posts: []BlogPost{
			{
				ID:       "web-dev-trends-2024",
				Title:    "Top 10 Web Development Trends in 2024",
				Excerpt:  "Explore the latest web development trends, including AI integration, serverless architecture, and new JavaScript frameworks that are shaping the future of the web.",
				Image:    "/static/images/web.avif",
				Date:     "May 10, 2024",
				Author:   "Sarah Lee",
				Category: "Web Development",
				Comments: 5,
				Likes:    24,
				URL:      "https://www.geeksforgeeks.org/top-web-development-trends",
				ReadTime: "5 min read",
				Badge:    BadgeTrending,
			},
			{
				ID:       "ui-ux-principles",
				Title:    "Mastering UI/UX Principles in Modern Design",
				Excerpt:  "A deep dive into the most effective UI/UX strategies that enhance user engagement and boost conversion rates for digital products and services.",
				Image:    "/static/images/uiux.jpg",
				Date:     "April 22, 2024",
				Author:   "David Kim",
				Category: "Design",
				Comments: 8,
				Likes:    42,
				URL:      "https://www.beyonduxdesign.com/book/",
				ReadTime: "7 min read",
				Badge:    BadgeFeatured,
			},
			{
				ID:       "react-18",
				Title:    "React 18: Features, Benefits, and Migration Tips",
				Excerpt:  "Learn about React 18's new concurrent features and how you can safely migrate your projects to take advantage of performance improvements.",
				Image:    "/static/images/react.jpg",
				Date:     "March 15, 2024",
				Author:   "Lina Gomez",
				Category: "JavaScript",
				Comments: 12,
				Likes:    56,
				URL:      "https://pieces.app/blog/react-18-a-comprehensive-guide-to-the-latest-features-and-updates",
				ReadTime: "8 min read",
				Badge:    BadgePopular,
			},
		},
		Projects: []Project{
			{
				ID:          "appointment-booking",
				Title:       "Appointment Booking System",
				Description: "A MERN stack-based Healthcare Management System designed to streamline appointment scheduling and improve overall clinic management efficiency.",
				Tags:        []string{"React", "Express", "Node.js", "MongoDB", "Stripe", "Razorpay"},
				DemoURL:     "https://healthcare-management-system-gamma.vercel.app/",
				CodeURL:     "https://github.com/Mohamedyoonus/Healthcare-Management-System",
				Image:       "/static/images/medicare.png",
			},
			{
				ID:          "art-gallery",
				Title:       "Art Gallery Website",
				Description: "A responsive portfolio website with smooth animations, dark/light mode toggle, and project showcase.",
				Tags:        []string{"React", "Styled Components", "Framer Motion", "MUI"},
				DemoURL:     "https://www.chalzart.in/",
				CodeURL:     "https://github.com/Mohamedyoonus/ChalzArt",
				Image:       "/static/images/chalzart.png",
			},
			{
				ID:          "ecommerce-store",
				Title:       "E-commerce Store",
				Description: "An online store where users browse, select, and purchase products securely and conveniently. Best viewed on desktop.",
				Tags:        []string{"React", "MUI", "Framer Motion"},
				DemoURL:     "https://shopy-olive.vercel.app/",
				CodeURL:     "https://github.com/Mohamedyoonus/E-com_Web",
				Image:       "/static/images/shopy.png",
			},
			{
				ID:          "live-chat",
				Title:       "Live Chat App",
				Description: "A full-stack real-time chat application built with a separate frontend and backend structure for scalable messaging.",
				Tags:        []string{"JavaScript", "Socket.io", "Node.js", "React", "MongoDB"},
				DemoURL:     "https://chat-app-4lju.vercel.app/login",
				CodeURL:     "https://github.com/Mohamedyoonus/chat_app",
				Image:       "/static/images/chat.png",
			},
		},
		Contact: ContactInfo{
			Email:    "yoonusy655@gmail.com",
			Phone:    "+91 7449112303",
			Location: "Ramnathapuram, Tamilnadu",
		},
		Social: []SocialLink{
			{Label: "GitHub", URL: "https://github.com/Mohamedyoonus", Color: "#6e5494"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/mohamed-yoonus-11288b248/", Color: "#0077b5"},
			{Label: "Instagram", URL: "https://www.instagram.com/_yoonu_z", Color: "#E1306C"},
			{Label: "Email", URL: "mailto:yoonusy655@gmail.com", Color: "#D44638"},
		},
		Highlights: []Highlight{
			{Name: "Development", Color: "#1e90ff"},
			{Name: "UI/UX Design", Color: "#6c5ce7"},
			{Name: "Creativity", Color: "#00cec9"},
		},
		Nav: []NavLink{
			{Name: "Home", Href: "/", Section: "home"},
			{Name: "Projects", Href: "/projects", Section: "projects"},
			{Name: "Contact", Href: "/contact", Section: "contact"},
		},
	}
}
