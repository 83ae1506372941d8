package portfolio

// seedProjects is the content the store starts with. Everything here is
// mutable through the admin panel but resets on restart.
func seedProjects() []Project {
	return []Project{
		{
			ID:              "1",
			Title:           "Quantum Dashboard",
			Description:     "A real-time data visualization platform for high-frequency trading analytics.",
			FullDescription: "Quantum Dashboard is a cutting-edge analytics tool designed for institutional traders. It processes millions of data points per second to provide sub-millisecond visualizations of market trends.",
			Challenges: []string{
				"Rendering high-frequency data without dropping frames",
				"Implementing complex SVG-based chart interactions",
				"Optimizing React re-renders for deep data structures",
			},
			Solution:   "Used specialized D3.js layers with React refs to bypass the virtual DOM for heavy rendering, combined with Web Workers for data processing.",
			Tags:       []string{"React", "D3.js", "Tailwind", "WebWorkers"},
			Image:      "https://images.unsplash.com/photo-1551288049-bbda38a5f452?auto=format&fit=crop&q=80&w=800&h=450",
			LiveLink:   "https://github.com/google",
			SourceLink: "https://github.com/google",
		},
		{
			ID:              "2",
			Title:           "Neon Commerce",
			Description:     "High-performance headless e-commerce experience with futuristic UI components.",
			FullDescription: "Neon Commerce redefines the online shopping experience with a focus on speed and immersive UI. It leverages a headless architecture for maximum flexibility.",
			Challenges: []string{
				"Building a custom 3D product viewer",
				"Ensuring 100/100 Lighthouse performance scores",
				"Seamless multi-region state management",
			},
			Solution:   "Architected with Next.js App Router and used Three.js for interactive product visualizations, resulting in a 40% increase in user engagement.",
			Tags:       []string{"Next.js", "TypeScript", "Three.js", "Stripe"},
			Image:      "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=800&h=450",
			LiveLink:   "https://example.com/neon-commerce",
			SourceLink: "https://github.com/facebook/react",
		},
		{
			ID:              "3",
			Title:           "Neural Portfolio",
			Description:     "A generative AI-integrated personal site showing the future of web interaction.",
			FullDescription: "This very portfolio explores how Large Language Models can act as a bridge between developers and potential clients, providing a personalized interactive experience.",
			Challenges: []string{
				"Integrating Google Gemini API securely",
				"Designing a \"cyberpunk-minimalist\" design system",
				"Handling real-time streaming AI responses",
			},
			Solution:   "Implemented a custom hook for the Gemini SDK and designed a glassmorphism-heavy UI using Tailwind CSS custom configurations.",
			Tags:       []string{"Gemini API", "React", "Tailwind", "Framermotion"},
			Image:      "https://images.unsplash.com/photo-1639322537228-f710d846310a?auto=format&fit=crop&q=80&w=800&h=450",
			LiveLink:   "https://ai.google.dev/",
			SourceLink: "https://github.com/google-gemini",
		},
	}
}

func seedSkills() []Skill {
	return []Skill{
		{Name: "React", Level: 95, Category: CategoryFrontend},
		{Name: "TypeScript", Level: 90, Category: CategoryFrontend},
		{Name: "JavaScript", Level: 98, Category: CategoryLanguage},
		{Name: "HTML/CSS", Level: 100, Category: CategoryLanguage},
		{Name: "Tailwind CSS", Level: 95, Category: CategoryTool},
		{Name: "Git/GitHub", Level: 85, Category: CategoryTool},
		{Name: "Gemini API", Level: 80, Category: CategoryTool},
	}
}
