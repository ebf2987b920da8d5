package catalog

// Default returns the built-in catalog. Name weights follow US Census
// popularity; phrase pools model a B2B SaaS workspace.
func Default() *Catalog {
	return &Catalog{
		FirstNames:       defaultFirstNames(),
		LastNames:        defaultLastNames(),
		TeamTemplates:    defaultTeamTemplates(),
		TeamDescriptions: defaultTeamDescriptions(),
		ProjectTemplates: defaultProjectTemplates(),
		TaskTemplates:    defaultTaskTemplates(),
		SectionTemplates: defaultSectionTemplates(),
		SubtaskPatterns:  defaultSubtaskPatterns(),
		CommentTemplates: defaultCommentTemplates(),
		Placeholders:     defaultPlaceholders(),
		TagRules:         defaultTagRules(),
	}
}

func defaultFirstNames() []WeightedName {
	return []WeightedName{
		{"James", 3.318}, {"Robert", 3.143}, {"John", 3.271}, {"Michael", 4.350}, {"David", 3.611},
		{"William", 3.614}, {"Richard", 2.563}, {"Joseph", 2.603}, {"Thomas", 2.304}, {"Christopher", 2.032},
		{"Charles", 2.106}, {"Daniel", 2.007}, {"Matthew", 1.600}, {"Anthony", 1.404}, {"Mark", 1.346},
		{"Donald", 1.348}, {"Steven", 1.286}, {"Paul", 1.286}, {"Andrew", 1.272}, {"Joshua", 1.266},
		{"Kenneth", 1.226}, {"Kevin", 1.173}, {"Brian", 1.166}, {"George", 1.164}, {"Timothy", 1.069},
		{"Ronald", 1.073}, {"Edward", 1.095}, {"Jason", 0.997}, {"Jeffrey", 0.973}, {"Ryan", 0.966},
		{"Mary", 2.629}, {"Patricia", 1.571}, {"Jennifer", 1.468}, {"Linda", 1.452}, {"Elizabeth", 1.629},
		{"Barbara", 1.435}, {"Susan", 1.120}, {"Jessica", 1.045}, {"Sarah", 0.998}, {"Karen", 0.985},
		{"Lisa", 0.969}, {"Nancy", 0.978}, {"Betty", 0.932}, {"Margaret", 0.944}, {"Sandra", 0.873},
		{"Ashley", 0.853}, {"Kimberly", 0.868}, {"Emily", 0.844}, {"Donna", 0.860}, {"Michelle", 0.811},
		{"Dorothy", 0.727}, {"Carol", 0.736}, {"Amanda", 0.772}, {"Melissa", 0.753}, {"Deborah", 0.739},
		{"Stephanie", 0.744}, {"Rebecca", 0.739}, {"Sharon", 0.740}, {"Laura", 0.697}, {"Cynthia", 0.705},
		{"Priya", 0.400}, {"Aisha", 0.350}, {"Wei", 0.380}, {"Hiroshi", 0.320}, {"Carlos", 0.450},
		{"Mohammed", 0.480}, {"Fatima", 0.400}, {"Yuki", 0.300}, {"Raj", 0.350}, {"Ana", 0.420},
		{"Chen", 0.380}, {"Olga", 0.280}, {"Ivan", 0.320}, {"Sanjay", 0.350}, {"Maria", 0.520},
		{"Ahmed", 0.380}, {"Nadia", 0.300}, {"Viktor", 0.280}, {"Kenji", 0.300}, {"Ananya", 0.320},
	}
}

func defaultLastNames() []WeightedName {
	return []WeightedName{
		{"Smith", 2.376}, {"Johnson", 1.935}, {"Williams", 1.635}, {"Brown", 1.437}, {"Jones", 1.362},
		{"Garcia", 1.166}, {"Miller", 1.161}, {"Davis", 1.116}, {"Rodriguez", 1.094}, {"Martinez", 1.060},
		{"Hernandez", 1.043}, {"Lopez", 0.973}, {"Gonzalez", 0.966}, {"Wilson", 0.843}, {"Anderson", 0.784},
		{"Thomas", 0.761}, {"Taylor", 0.751}, {"Moore", 0.724}, {"Jackson", 0.708}, {"Martin", 0.678},
		{"Lee", 0.693}, {"Perez", 0.681}, {"Thompson", 0.669}, {"White", 0.660}, {"Harris", 0.624},
		{"Sanchez", 0.612}, {"Clark", 0.575}, {"Ramirez", 0.568}, {"Lewis", 0.562}, {"Robinson", 0.548},
		{"Walker", 0.541}, {"Young", 0.529}, {"Allen", 0.496}, {"King", 0.491}, {"Wright", 0.483},
		{"Scott", 0.481}, {"Torres", 0.478}, {"Nguyen", 0.476}, {"Hill", 0.474}, {"Flores", 0.467},
		{"Green", 0.459}, {"Adams", 0.442}, {"Nelson", 0.439}, {"Baker", 0.425}, {"Hall", 0.423},
		{"Rivera", 0.419}, {"Campbell", 0.415}, {"Mitchell", 0.409}, {"Carter", 0.407}, {"Roberts", 0.398},
		{"Patel", 0.520}, {"Kim", 0.480}, {"Shah", 0.350}, {"Chen", 0.450}, {"Wang", 0.420},
		{"Singh", 0.380}, {"Kumar", 0.400}, {"Sharma", 0.350}, {"Gupta", 0.320}, {"Wong", 0.300},
		{"Liu", 0.340}, {"Zhang", 0.380}, {"Huang", 0.300}, {"Yang", 0.280}, {"Tanaka", 0.250},
		{"Sato", 0.240}, {"Suzuki", 0.230}, {"Yamamoto", 0.220}, {"Nakamura", 0.210}, {"Kobayashi", 0.200},
	}
}

func defaultTeamTemplates() []DepartmentList {
	return []DepartmentList{
		{Department: "Engineering", Items: []string{
			"Platform Engineering", "Backend Services", "Frontend Team",
			"Mobile Development", "DevOps", "Infrastructure", "API Team",
			"Data Engineering", "Security Engineering", "QA Engineering",
			"Site Reliability", "Core Services", "Developer Experience",
			"Cloud Platform", "ML Engineering", "Integrations Team",
		}},
		{Department: "Product", Items: []string{
			"Product Core", "Growth Product", "Enterprise Product",
			"Mobile Product", "Platform Product", "Analytics Product",
			"UX Research", "Product Operations",
		}},
		{Department: "Marketing", Items: []string{
			"Brand Marketing", "Content Marketing", "Growth Marketing",
			"Product Marketing", "Demand Generation", "Marketing Operations",
			"Events Team", "Social Media",
		}},
		{Department: "Sales", Items: []string{
			"Enterprise Sales", "Mid-Market Sales", "SMB Sales",
			"Sales Development", "Solutions Engineering", "Sales Operations",
			"Customer Success", "Account Management",
		}},
		{Department: "Operations", Items: []string{
			"Business Operations", "Finance", "Legal", "IT Operations",
			"Procurement", "Facilities",
		}},
		{Department: "HR", Items: []string{
			"People Operations", "Talent Acquisition", "Learning & Development",
			"HR Business Partners",
		}},
	}
}

func defaultTeamDescriptions() []DepartmentText {
	return []DepartmentText{
		{Department: "Engineering", Text: "Responsible for building and maintaining {focus} systems and infrastructure."},
		{Department: "Product", Text: "Drives product strategy, roadmap, and feature development for {focus}."},
		{Department: "Marketing", Text: "Leads {focus} initiatives to drive brand awareness and customer acquisition."},
		{Department: "Sales", Text: "Manages {focus} customer relationships and revenue generation."},
		{Department: "Operations", Text: "Oversees {focus} processes and organizational efficiency."},
		{Department: "HR", Text: "Supports {focus} initiatives for employee experience and organizational development."},
	}
}

func defaultProjectTemplates() []DepartmentList {
	return []DepartmentList{
		{Department: "Engineering", Items: []string{
			"Q{quarter} Platform Improvements", "API v{version} Development",
			"Performance Optimization Sprint", "Security Audit Remediation",
			"Mobile App {feature} Feature", "Infrastructure Migration",
			"Tech Debt Reduction", "Developer Experience Improvements",
			"Monitoring & Observability", "CI/CD Pipeline Enhancement",
			"Database Optimization", "Microservices Refactoring",
			"{component} Service Rewrite", "Load Testing Initiative",
			"Error Handling Improvements", "Logging Infrastructure",
		}},
		{Department: "Product", Items: []string{
			"Q{quarter} Roadmap Execution", "User Research: {feature}",
			"Feature Discovery: {area}", "Product Analytics Dashboard",
			"Competitive Analysis", "Beta Program: {feature}",
			"Customer Feedback Integration", "Product Requirements: {area}",
			"UX Improvement Initiative", "Onboarding Flow Redesign",
		}},
		{Department: "Marketing", Items: []string{
			"Q{quarter} Campaign Planning", "{event} Event Launch",
			"Content Calendar Q{quarter}", "Brand Refresh Initiative",
			"Lead Generation Campaign", "Product Launch: {feature}",
			"SEO Optimization", "Social Media Strategy",
			"Email Marketing Automation", "Partner Marketing Program",
			"Customer Case Studies", "Webinar Series",
		}},
		{Department: "Sales", Items: []string{
			"Q{quarter} Sales Targets", "Enterprise Deal Pipeline",
			"Sales Enablement Materials", "CRM Data Cleanup",
			"Territory Planning Q{quarter}", "Competitive Battlecards",
			"Customer Success Playbook", "Upsell Campaign",
			"Partner Channel Development", "Sales Training Program",
		}},
		{Department: "Operations", Items: []string{
			"Q{quarter} OKR Planning", "Process Automation Initiative",
			"Vendor Review & Consolidation", "Budget Planning FY{year}",
			"Compliance Audit Prep", "Office Expansion Planning",
			"IT Security Review", "Business Continuity Planning",
		}},
		{Department: "HR", Items: []string{
			"Q{quarter} Hiring Plan", "Employee Engagement Survey",
			"Performance Review Cycle", "Training & Development Program",
			"Culture Initiative", "Benefits Review",
			"Onboarding Program Redesign", "Diversity & Inclusion Goals",
		}},
	}
}

func defaultTaskTemplates() []DepartmentList {
	return []DepartmentList{
		{Department: "Engineering", Items: []string{
			"Implement {component} {action}",
			"{action} {component} module",
			"Fix: {bug_description}",
			"Refactor {component} for {reason}",
			"Add {feature} to {component}",
			"Update {component} documentation",
			"Write tests for {component}",
			"Debug {component} {issue}",
			"Optimize {component} performance",
			"Review PR: {component} changes",
			"Set up {tool} integration",
			"Migrate {component} to {target}",
			"Add error handling to {component}",
			"Implement {component} caching",
			"Add logging to {component}",
		}},
		{Department: "Product", Items: []string{
			"Draft PRD for {feature}",
			"User research: {topic}",
			"Competitive analysis: {competitor}",
			"Review design mockups for {feature}",
			"Write user stories for {feature}",
			"Define success metrics for {feature}",
			"Prioritize {quarter} backlog",
			"Stakeholder alignment meeting",
			"Update product roadmap",
			"Analyze {metric} data",
		}},
		{Department: "Marketing", Items: []string{
			"Write blog post: {topic}",
			"Create social media content for {campaign}",
			"Design landing page for {campaign}",
			"Set up email automation for {campaign}",
			"Review campaign analytics",
			"Update website copy for {page}",
			"Coordinate with design on {asset}",
			"Schedule social posts for {period}",
			"Create presentation for {event}",
			"Research {topic} trends",
		}},
		{Department: "Sales", Items: []string{
			"Follow up with {company}",
			"Prepare proposal for {company}",
			"Update CRM data for {region}",
			"Create sales deck for {vertical}",
			"Schedule demo with {company}",
			"Review contract for {company}",
			"Competitive positioning for {competitor}",
			"Update territory plan",
			"Prepare for QBR",
			"Train on new product features",
		}},
		{Department: "Operations", Items: []string{
			"Review {process} workflow",
			"Update {document} documentation",
			"Coordinate with vendors on {topic}",
			"Prepare {report} report",
			"Audit {system} access",
			"Process {request} requests",
			"Update {policy} policy",
			"Review budget for {department}",
		}},
		{Department: "HR", Items: []string{
			"Screen candidates for {role}",
			"Schedule interviews for {role}",
			"Update job description: {role}",
			"Prepare onboarding for {name}",
			"Review performance feedback",
			"Coordinate training session",
			"Update employee handbook",
			"Process benefits enrollment",
		}},
	}
}

func defaultSectionTemplates() []DepartmentList {
	return []DepartmentList{
		{Department: "Engineering", Items: []string{"Backlog", "To Do", "In Progress", "In Review", "Done"}},
		{Department: "Product", Items: []string{"Discovery", "Definition", "Design", "In Development", "Shipped"}},
		{Department: "Marketing", Items: []string{"Ideas", "Planning", "In Progress", "Review", "Published"}},
		{Department: "Sales", Items: []string{"Pipeline", "Qualified", "In Progress", "Closing", "Won/Lost"}},
		{Department: "Operations", Items: []string{"Backlog", "This Week", "In Progress", "Done"}},
		{Department: "HR", Items: []string{"To Do", "In Progress", "Pending Approval", "Complete"}},
		{Department: "default", Items: []string{"To Do", "In Progress", "Done"}},
	}
}

func defaultSubtaskPatterns() []string {
	return []string{
		"Research {topic}",
		"Draft initial version",
		"Review with team",
		"Implement changes",
		"Write tests",
		"Update documentation",
		"Get approval",
		"Deploy to staging",
		"QA verification",
		"Final review",
		"Merge PR",
		"Update status",
		"Notify stakeholders",
		"Create follow-up tasks",
		"Schedule meeting",
		"Gather requirements",
		"Design solution",
		"Code review",
		"Performance testing",
		"Security review",
	}
}

func defaultCommentTemplates() []CommentSet {
	return []CommentSet{
		{Kind: "status_update", Weight: 0.35, Texts: []string{
			"Started working on this.",
			"Making progress, should be done by end of day.",
			"Completed the first part, moving to the next step.",
			"Running into some issues, will update soon.",
			"Done with my part, passing to review.",
			"Pushed the changes, ready for review.",
			"This is taking longer than expected.",
			"Almost done, just finishing up tests.",
			"Deployed to staging for testing.",
			"All done! Moving to complete.",
		}},
		{Kind: "question", Weight: 0.20, Texts: []string{
			"Can someone clarify the requirements here?",
			"Should this follow the new or old pattern?",
			"Do we have designs for this?",
			"What's the priority on this?",
			"Is this blocked by anything?",
			"Who should review this?",
			"When do we need this by?",
			"Are there any edge cases to consider?",
			"Should I coordinate with another team?",
			"What's the expected behavior here?",
		}},
		{Kind: "blocker", Weight: 0.10, Texts: []string{
			"Blocked: waiting on API changes from backend team.",
			"Blocked: need access to production logs.",
			"Blocked: dependency not released yet.",
			"Blocked: waiting on design review.",
			"Blocked: need clarification from product.",
			"Blocked: CI is failing on main branch.",
			"Can't proceed until the migration is complete.",
			"Need someone to unblock the PR.",
		}},
		{Kind: "feedback", Weight: 0.15, Texts: []string{
			"Looks good to me!",
			"LGTM, approved.",
			"Left some comments on the PR.",
			"Nice work on this!",
			"A few minor suggestions, otherwise good.",
			"Thanks for picking this up.",
			"Great progress!",
			"This is exactly what we needed.",
		}},
		{Kind: "technical", Weight: 0.15, Texts: []string{
			"Make sure to handle the null case.",
			"Consider using the new caching layer.",
			"Don't forget to update the documentation.",
			"We should add metrics for this.",
			"Remember to add error handling.",
			"This might affect performance, let's monitor.",
			"Check the edge cases around timezone handling.",
			"The tests should cover the error scenarios.",
		}},
		{Kind: "reference", Weight: 0.05, Texts: []string{
			"Related to the discussion in #channel.",
			"See the design doc for more context.",
			"This is part of the larger initiative.",
			"Follow up from our sync meeting.",
			"Context: this was requested by customer X.",
			"Reference: linked Jira ticket has more details.",
		}},
	}
}

func defaultPlaceholders() []Vocabulary {
	return []Vocabulary{
		// Project name templates.
		{Scope: ScopeProject, Placeholder: "feature", Values: []string{
			"Analytics", "Reporting", "Notifications", "Integrations", "Dashboard", "API", "Mobile",
		}},
		{Scope: ScopeProject, Placeholder: "area", Values: []string{
			"Enterprise", "SMB", "Growth", "Retention", "Activation", "Monetization",
		}},
		{Scope: ScopeProject, Placeholder: "component", Values: []string{
			"Auth", "Billing", "Notifications", "Search", "Analytics", "Core",
		}},
		{Scope: ScopeProject, Placeholder: "event", Values: []string{
			"Summit", "Conference", "Webinar", "Launch", "Workshop",
		}},

		// Task name templates.
		{Scope: ScopeTask, Placeholder: "component", Values: []string{
			"auth", "billing", "notifications", "search", "analytics",
			"dashboard", "API", "mobile", "payments", "users", "reports",
			"integrations", "settings", "permissions", "cache", "queue",
		}},
		{Scope: ScopeTask, Placeholder: "action", Values: []string{
			"endpoint", "service", "handler", "controller", "middleware", "validation",
		}},
		{Scope: ScopeTask, Placeholder: "feature", Values: []string{
			"filtering", "sorting", "pagination", "export", "import", "bulk actions",
		}},
		{Scope: ScopeTask, Placeholder: "bug_description", Values: []string{
			"users unable to login after password reset",
			"duplicate entries in export",
			"timezone handling in reports",
			"memory leak in background jobs",
			"race condition in concurrent updates",
			"incorrect calculation in billing",
			"missing validation for edge case",
			"UI not updating after action",
		}},
		{Scope: ScopeTask, Placeholder: "reason", Values: []string{
			"scalability", "maintainability", "performance", "security", "readability",
		}},
		{Scope: ScopeTask, Placeholder: "issue", Values: []string{
			"timeout", "memory usage", "error rate", "latency", "crash",
		}},
		{Scope: ScopeTask, Placeholder: "tool", Values: []string{
			"Datadog", "Sentry", "Slack", "Jira", "GitHub Actions", "Redis",
		}},
		{Scope: ScopeTask, Placeholder: "target", Values: []string{
			"new architecture", "cloud service", "async processing", "microservice",
		}},
		{Scope: ScopeTask, Placeholder: "topic", Values: []string{
			"AI features", "mobile users", "enterprise needs", "automation", "integrations",
		}},
		{Scope: ScopeTask, Placeholder: "competitor", Values: []string{
			"Competitor A", "Competitor B", "market leader",
		}},
		{Scope: ScopeTask, Placeholder: "campaign", Values: []string{
			"Q1 launch", "product update", "feature release", "webinar",
		}},
		{Scope: ScopeTask, Placeholder: "page", Values: []string{
			"homepage", "pricing", "features", "about",
		}},
		{Scope: ScopeTask, Placeholder: "asset", Values: []string{
			"banner", "video", "infographic", "case study",
		}},
		{Scope: ScopeTask, Placeholder: "period", Values: []string{
			"this week", "next sprint", "Q2",
		}},
		{Scope: ScopeTask, Placeholder: "event", Values: []string{
			"conference", "webinar", "partner meeting",
		}},
		{Scope: ScopeTask, Placeholder: "company", Values: []string{
			"Acme Corp", "TechStart", "Enterprise Inc", "Growth Co",
		}},
		{Scope: ScopeTask, Placeholder: "region", Values: []string{
			"NA", "EMEA", "APAC",
		}},
		{Scope: ScopeTask, Placeholder: "vertical", Values: []string{
			"fintech", "healthcare", "retail", "SaaS",
		}},
		{Scope: ScopeTask, Placeholder: "process", Values: []string{
			"onboarding", "procurement", "approval", "reporting",
		}},
		{Scope: ScopeTask, Placeholder: "document", Values: []string{
			"runbook", "SOP", "policy", "guidelines",
		}},
		{Scope: ScopeTask, Placeholder: "system", Values: []string{
			"AWS", "GCP", "Okta", "Salesforce",
		}},
		{Scope: ScopeTask, Placeholder: "request", Values: []string{
			"access", "expense", "vacation", "equipment",
		}},
		{Scope: ScopeTask, Placeholder: "policy", Values: []string{
			"security", "travel", "expense", "remote work",
		}},
		{Scope: ScopeTask, Placeholder: "department", Values: []string{
			"engineering", "sales", "marketing", "product",
		}},
		{Scope: ScopeTask, Placeholder: "role", Values: []string{
			"Software Engineer", "Product Manager", "Designer", "Sales Rep",
		}},
		{Scope: ScopeTask, Placeholder: "name", Values: []string{
			"new hire", "team member", "contractor",
		}},
		{Scope: ScopeTask, Placeholder: "metric", Values: []string{
			"conversion", "retention", "engagement", "churn",
		}},
		{Scope: ScopeTask, Placeholder: "report", Values: []string{
			"weekly", "monthly", "quarterly",
		}},

		// Subtask patterns.
		{Scope: ScopeSubtask, Placeholder: "topic", Values: []string{
			"options", "requirements", "alternatives", "dependencies",
		}},
	}
}

func defaultTagRules() []TagRule {
	return []TagRule{
		{Keywords: []string{"fix", "bug"}, Tag: "bug"},
		{Keywords: []string{"feature", "implement"}, Tag: "feature"},
		{Keywords: []string{"refactor"}, Tag: "tech-debt"},
		{Keywords: []string{"document"}, Tag: "documentation"},
		{Keywords: []string{"test"}, Tag: "testing"},
		{Keywords: []string{"security"}, Tag: "security"},
		{Keywords: []string{"performance", "optimize"}, Tag: "performance"},
		{Keywords: []string{"mobile"}, Tag: "mobile"},
		{Keywords: []string{"api"}, Tag: "api"},
	}
}
