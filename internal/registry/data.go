package registry

// builtinServers defines every server descriptor known at build time.
var builtinServers = []Server{
	{
		Name:         "filesystem",
		Description:  "Read and edit files in allowed directories",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "@modelcontextprotocol/server-filesystem", "."},
	},
	{
		Name:         "git",
		Description:  "Inspect and manipulate local git repositories",
		Prerequisite: PrereqPython,
		Command:      "uvx",
		Args:         []string{"mcp-server-git"},
	},
	{
		Name:         "fetch",
		Description:  "Fetch web content and convert it for model use",
		Prerequisite: PrereqPython,
		Command:      "uvx",
		Args:         []string{"mcp-server-fetch"},
	},
	{
		Name:         "memory",
		Description:  "Persistent knowledge-graph memory across sessions",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "@modelcontextprotocol/server-memory"},
	},
	{
		Name:         "sequential-thinking",
		Description:  "Structured step-by-step reasoning scratchpad",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "@modelcontextprotocol/server-sequential-thinking"},
	},
	{
		Name:         "github",
		Description:  "GitHub repositories, issues, and pull requests",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "@modelcontextprotocol/server-github"},
		Env:          map[string]string{"GITHUB_TOOLSETS": "repos,issues,pull_requests"},
	},
	{
		Name:         "aws-core",
		Description:  "AWS guidance and service orchestration",
		Prerequisite: PrereqPython,
		Command:      "uvx",
		Args:         []string{"awslabs.core-mcp-server@latest"},
		Env:          map[string]string{"FASTMCP_LOG_LEVEL": "ERROR"},
	},
	{
		Name:         "aws-docs",
		Description:  "Search and read AWS documentation",
		Prerequisite: PrereqPython,
		Command:      "uvx",
		Args:         []string{"awslabs.aws-documentation-mcp-server@latest"},
		Env:          map[string]string{"FASTMCP_LOG_LEVEL": "ERROR"},
	},
	{
		Name:         "cdk",
		Description:  "AWS CDK construct guidance and best practices",
		Prerequisite: PrereqPython,
		Command:      "uvx",
		Args:         []string{"awslabs.cdk-mcp-server@latest"},
		Env:          map[string]string{"FASTMCP_LOG_LEVEL": "ERROR"},
	},
	{
		Name:         "terraform",
		Description:  "Terraform workflow, providers, and module docs",
		Prerequisite: PrereqTerraform,
		Command:      "uvx",
		Args:         []string{"awslabs.terraform-mcp-server@latest"},
		Env:          map[string]string{"FASTMCP_LOG_LEVEL": "ERROR"},
	},
	{
		Name:         "kubernetes",
		Description:  "Inspect and manage Kubernetes clusters",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "kubernetes-mcp-server@latest"},
	},
	{
		Name:         "docker-gateway",
		Description:  "Docker MCP gateway for containerized servers",
		Prerequisite: PrereqDocker,
		Command:      "docker",
		Args:         []string{"mcp", "gateway", "run"},
	},
	{
		Name:         "docker-hub",
		Description:  "Search and inspect Docker Hub images",
		Prerequisite: PrereqDocker,
		Command:      "docker",
		Args:         []string{"run", "-i", "--rm", "mcp/dockerhub"},
	},
	{
		Name:         "playwright",
		Description:  "Drive a browser for testing and scraping",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "@playwright/mcp@latest"},
	},
	{
		Name:         "context7",
		Description:  "Up-to-date library documentation lookup",
		Prerequisite: PrereqNode,
		Command:      "npx",
		Args:         []string{"-y", "@upstash/context7-mcp"},
	},
}

// builtinPatterns defines the named capability packs. Overlap between
// patterns is deliberate; resolution deduplicates on first occurrence.
var builtinPatterns = []Pattern{
	{
		Name:        "core",
		Description: "Everyday development basics",
		Servers:     []string{"filesystem", "git", "fetch", "memory", "sequential-thinking"},
	},
	{
		Name:        "aws",
		Description: "AWS cloud development",
		Servers:     []string{"aws-core", "aws-docs", "cdk", "fetch"},
	},
	{
		Name:        "iac",
		Description: "Infrastructure as code",
		Servers:     []string{"terraform", "cdk", "filesystem"},
	},
	{
		Name:        "k8s",
		Description: "Kubernetes operations",
		Servers:     []string{"kubernetes", "docker-gateway", "filesystem"},
	},
	{
		Name:        "containers",
		Description: "Container tooling",
		Servers:     []string{"docker-gateway", "docker-hub"},
	},
	{
		Name:        "web",
		Description: "Web development and automation",
		Servers:     []string{"playwright", "fetch", "github"},
	},
	{
		Name:        "docs",
		Description: "Documentation and research",
		Servers:     []string{"context7", "fetch", "memory"},
	},
}
