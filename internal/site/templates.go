package site

// homeTemplate is the public portfolio page.
const homeTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Owner.User}} :: {{.Owner.Role}}</title>
</head>
<body>
  <header class="hero">
    <h1>{{.Owner.User}}</h1>
    <p class="role">{{.Owner.Role}}</p>
    <nav class="links">
      {{range .Links}}<a href="{{.URL}}" rel="me">{{.Platform}}</a> {{end}}
    </nav>
  </header>

  <section id="origins" class="bio">
    {{.BioHTML}}
  </section>

  <section id="manifesto" class="projects">
    <h2>Deployments</h2>
    <nav class="tag-filter">
      {{$sel := .Selected}}
      {{range .Tags}}<a href="/?tag={{.}}" {{if eq . $sel}}class="active"{{end}}>{{.}}</a> {{end}}
    </nav>
    <form method="GET" action="/" class="search">
      <input type="search" name="q" value="{{.Query}}" placeholder="Search projects...">
      <input type="hidden" name="tag" value="{{.Selected}}">
    </form>
    <div class="grid">
      {{range .Projects}}
      <article class="card" id="project-{{.ID}}">
        <img src="{{.Image}}" alt="{{.Title}}" loading="lazy">
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <div class="detail">{{.FullHTML}}</div>
        {{if .Challenges}}
        <ul class="challenges">
          {{range .Challenges}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
        {{if .Solution}}<p class="solution">{{.Solution}}</p>{{end}}
        <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span> {{end}}</div>
        <footer>
          <a href="{{.LiveLink}}">Live</a>
          <a href="{{.SourceLink}}">Source</a>
        </footer>
      </article>
      {{else}}
      <p class="empty">No deployments match that filter.</p>
      {{end}}
    </div>
  </section>

  <section id="system" class="skills">
    <h2>Neural Matrix</h2>
    <ul>
      {{range .Skills}}
      <li>
        <span class="name">{{.Name}}</span>
        <meter min="0" max="100" value="{{.Level}}">{{.Level}}%</meter>
        <span class="category">{{.Category}}</span>
      </li>
      {{end}}
    </ul>
  </section>

  <section id="connect" class="contact">
    <h2>Open a Channel</h2>
    <form method="POST" action="/api/contact" class="contact-form">
      <input name="sender_name" placeholder="Name" required>
      <input name="sender_email" type="email" placeholder="Email" required>
      <input name="subject" placeholder="Subject (optional)">
      <textarea name="body" placeholder="Message" required></textarea>
      <button type="submit">Transmit</button>
    </form>
  </section>

  <footer class="site-footer">
    <a href="/admin">[ sys_access ]</a>
  </footer>
</body>
</html>`

// loginTemplate is the admin gate shown while unauthenticated. The
// status block mirrors the gate's idle/scanning/denied sequence.
const loginTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
  <meta charset="UTF-8">
  <title>Terminal_Auth</title>
</head>
<body class="auth status-{{.Status}}">
  <main class="gate">
    <h1>{{if eq .Status "scanning"}}Neural_Syncing...{{else}}Terminal_Auth{{end}}</h1>
    <p class="lock">System_Lock</p>
    {{if .Error}}<p class="denied">{{.Error}}</p>{{end}}
    <form method="POST" action="/api/auth/login" class="keyform">
      <input type="password" name="access_key" placeholder="Enter Access Key..." autofocus
        {{if eq .Status "scanning"}}disabled{{end}}>
      <button type="submit" {{if eq .Status "scanning"}}disabled{{end}}>
        {{if eq .Status "scanning"}}Verifying...{{else}}Initialize_Link{{end}}
      </button>
    </form>
    <a class="abort" href="/">[ Abort_Auth_Sequence ]</a>
  </main>
</body>
</html>`

// adminTemplate is the dashboard shell once the gate has granted.
const adminTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
  <meta charset="UTF-8">
  <title>Command_Center</title>
</head>
<body class="admin tab-{{.ActiveTab}}">
  <header class="hud">
    <h1>COMMAND_CENTER</h1>
    <p class="session">Authorized Access: {{.Owner.User}}_{{.Owner.Role}}</p>
    <form method="POST" action="/api/auth/logout">
      <button type="submit">Term_Session [ESC]</button>
    </form>
  </header>

  <section class="stats" data-stream="/api/telemetry/stream">
    <div class="stat"><span>Deployments</span><strong>{{len .Projects}}</strong></div>
    <div class="stat"><span>Unread</span><strong>{{.UnreadCount}}</strong></div>
  </section>

  <nav class="tabs">
    <a href="#projects">Project_Log</a>
    <a href="#skills">Neural_Matrix</a>
    <a href="#inbox">Comm_Relay</a>
    <a href="#settings">Core_Config</a>
  </nav>

  <section id="projects">
    <h2>Active Deployments</h2>
    <ul>
      {{range .Projects}}
      <li>
        <span class="title">{{.Title}}</span>
        <code class="id">{{.ID}}</code>
      </li>
      {{end}}
    </ul>
  </section>

  <section id="skills">
    <h2>Neural Matrix Config</h2>
    <ul>
      {{range .Skills}}
      <li>{{.Name}}: {{.Level}}% <small>{{.Category}}</small></li>
      {{end}}
    </ul>
  </section>

  <section id="inbox">
    <h2>Comm_Relay ({{.Filter}})</h2>
    <ul>
      {{range .Messages}}
      <li class="{{if not .IsRead}}unread{{end}} priority-{{.Priority}}">
        <strong>{{.Subject}}</strong>
        <span>{{.SenderName}} &lt;{{.SenderEmail}}&gt;</span>
        <time>{{.Timestamp.Format "2006-01-02 15:04"}}</time>
        <p>{{.Body}}</p>
      </li>
      {{else}}
      <li class="empty">No messages in this partition.</li>
      {{end}}
    </ul>
  </section>
</body>
</html>`

// notFoundTemplate renders for any path other than / and /admin.
const notFoundTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
  <meta charset="UTF-8">
  <title>404: Signal Lost</title>
</head>
<body class="notfound">
  <main>
    <h1>404</h1>
    <p>Signal lost: <code>{{.Path}}</code> does not resolve on this grid.</p>
    <a href="/">[ Return_To_Surface ]</a>
  </main>
</body>
</html>`
