package catalog

import "github.com/atinyakov/pakjobs/internal/models"

var cities = []string{
	"Karachi", "Lahore", "Islamabad", "Faisalabad", "Rawalpindi",
	"Multan", "Peshawar", "Quetta", "Gujranwala", "Sialkot",
	"Abbottabad", "Bahawalpur", "Sargodha", "Sukkur", "Hyderabad",
	"Jhelum", "Mardan", "Larkana", "Gujrat", "Kasur", "Okara", "Sahiwal",
}

// featuredCities are the "Browse by City" tiles on the home page.
var featuredCities = []string{"Karachi", "Lahore", "Islamabad", "Faisalabad", "Peshawar", "Quetta"}

var categories = []string{
	"Software Development", "Marketing", "Design", "Customer Service",
	"Finance", "Management", "Education", "Healthcare", "Engineering", "Sales",
	"Writing", "Data Science", "Administrative",
}

var jobs = []models.JobPosting{
	{
		ID:          "1",
		Title:       "Senior React Developer",
		Company:     "Systems Ltd",
		Location:    "Lahore",
		Type:        models.FullTime,
		Category:    "Software Development",
		Salary:      "250k - 350k PKR",
		PostedAt:    "2 days ago",
		Description: "Looking for a senior developer with 5+ years of experience in React and Node.js.",
	},
	{
		ID:          "2",
		Title:       "Digital Marketing Lead",
		Company:     "Daraz PK",
		Location:    "Karachi",
		Type:        models.FullTime,
		Category:    "Marketing",
		Salary:      "120k - 180k PKR",
		PostedAt:    "1 day ago",
		Description: "Lead digital campaigns and SEO strategy for the largest e-commerce platform in Pakistan.",
	},
	{
		ID:          "3",
		Title:       "UI/UX Designer",
		Company:     "10Pearls",
		Location:    "Islamabad",
		Type:        models.Remote,
		Category:    "Design",
		Salary:      "150k - 220k PKR",
		PostedAt:    "5 hours ago",
		Description: "Design intuitive and beautiful user interfaces for international clients.",
	},
	{
		ID:          "4",
		Title:       "Chartered Accountant",
		Company:     "A.F. Ferguson & Co.",
		Location:    "Lahore",
		Type:        models.FullTime,
		Category:    "Finance",
		Salary:      "200k - 300k PKR",
		PostedAt:    "3 days ago",
		Description: "Senior audit associate position for candidates with CA/ACCA background.",
	},
	{
		ID:          "5",
		Title:       "Sales Manager",
		Company:     "Zong 4G",
		Location:    "Peshawar",
		Type:        models.FullTime,
		Category:    "Sales",
		Salary:      "80k - 110k PKR",
		PostedAt:    "4 days ago",
		Description: "Manage regional sales targets and corporate relations in Peshawar.",
	},
	{
		ID:          "6",
		Title:       "Content Strategist",
		Company:     "Digital Pulse",
		Location:    "Remote",
		Type:        models.Contract,
		Category:    "Writing",
		Salary:      "60k - 90k PKR",
		PostedAt:    "1 week ago",
		Description: "Create engaging content for tech blogs and social media platforms.",
	},
	{
		ID:          "7",
		Title:       "Data Scientist",
		Company:     "Venture Dive",
		Location:    "Islamabad",
		Type:        models.FullTime,
		Category:    "Data Science",
		Salary:      "180k - 250k PKR",
		PostedAt:    "2 days ago",
		Description: "Build predictive models and analyze complex datasets for fintech products.",
	},
	{
		ID:          "8",
		Title:       "Civil Engineer",
		Company:     "Habib Construction",
		Location:    "Quetta",
		Type:        models.FullTime,
		Category:    "Engineering",
		Salary:      "130k - 170k PKR",
		PostedAt:    "6 days ago",
		Description: "Oversee site operations and structural integrity for infrastructure projects.",
	},
	{
		ID:          "9",
		Title:       "Customer Support Lead",
		Company:     "Foodpanda",
		Location:    "Faisalabad",
		Type:        models.PartTime,
		Category:    "Customer Service",
		Salary:      "45k - 60k PKR",
		PostedAt:    "12 hours ago",
		Description: "Lead a team of support agents to ensure partner and customer satisfaction.",
	},
	{
		ID:          "10",
		Title:       "Senior Nurse",
		Company:     "Shaukat Khanum Hospital",
		Location:    "Multan",
		Type:        models.FullTime,
		Category:    "Healthcare",
		Salary:      "90k - 120k PKR",
		PostedAt:    "5 days ago",
		Description: "Provide quality patient care in the oncology department.",
	},
	{
		ID:          "11",
		Title:       "Secondary School Teacher",
		Company:     "The City School",
		Location:    "Rawalpindi",
		Type:        models.FullTime,
		Category:    "Education",
		Salary:      "55k - 75k PKR",
		PostedAt:    "3 days ago",
		Description: "Math and Science teacher for O-Level and A-Level classes.",
	},
	{
		ID:          "12",
		Title:       "Office Administrator",
		Company:     "State Life Insurance",
		Location:    "Sargodha",
		Type:        models.FullTime,
		Category:    "Administrative",
		Salary:      "40k - 55k PKR",
		PostedAt:    "1 week ago",
		Description: "Manage daily office operations, scheduling, and documentation.",
	},
	{
		ID:          "13",
		Title:       "Full Stack Engineer",
		Company:     "Airlift Express",
		Location:    "Lahore",
		Type:        models.Remote,
		Category:    "Software Development",
		Salary:      "220k - 310k PKR",
		PostedAt:    "2 days ago",
		Description: "Working on logistics optimization software using Python and React.",
	},
	{
		ID:          "14",
		Title:       "Branch Manager",
		Company:     "HBL",
		Location:    "Sukkur",
		Type:        models.FullTime,
		Category:    "Finance",
		Salary:      "140k - 190k PKR",
		PostedAt:    "4 days ago",
		Description: "Lead branch operations and achieve financial growth targets.",
	},
	{
		ID:          "15",
		Title:       "Call Center Representative",
		Company:     "Ibex",
		Location:    "Karachi",
		Type:        models.FullTime,
		Category:    "Customer Service",
		Salary:      "50k - 70k PKR",
		PostedAt:    "1 day ago",
		Description: "Handling international customer queries for US-based telecommunication clients.",
	},
	{
		ID:          "16",
		Title:       "HR Executive",
		Company:     "Interloop Ltd",
		Location:    "Faisalabad",
		Type:        models.FullTime,
		Category:    "Management",
		Salary:      "70k - 100k PKR",
		PostedAt:    "2 weeks ago",
		Description: "Coordinate recruitment processes and employee engagement activities.",
	},
}
