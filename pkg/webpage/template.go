package webpage

// pageHTML is the document skeleton. The view model supplies all dynamic
// content; inputs are local trusted schedule files, so text/template is used
// so the precomputed inline markup (<br />, the comment block) passes
// through unescaped.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="description" content="Brookline High School bhs-schedule">
    <meta name="keyword" content="Brookline High School,bhs-schedule">
    <title>2019-2020 BHS Schedule</title>
    <link href="https://fonts.googleapis.com/css?family=Source+Sans+Pro:400,600&display=swap" rel="stylesheet">
    <link href="https://fonts.googleapis.com/css?family=Lato:400,700&display=swap" rel="stylesheet">
    <link href="https://fonts.googleapis.com/css?family=Saira+Extra+Condensed:200,400&display=swap" rel="stylesheet">
    <link href="./styles/schedule.css" rel="stylesheet">
    <script src="./scripts/schedule.js"></script>
  </head>
  <!--
{{.Comment}}
  -->
  <body>
    <!-- HEADER -->
    <header>
      <section>
        <h1>Brookline High School &mdash; 2019-2020 Schedule</h1>
      </section>
    </header>
    <!-- MAIN -->
    <main>
      <h2>{{.Heading}}</h2>
      <section class="days">
{{- range .Days}}
        <article class="day">
          <h3>{{.Title}}</h3>
          <div class="cohorts">
{{- range .Cohorts}}
            <div class="cohort">
              <div class="{{.Style}}">
                <h4>{{.Name}}</h4>
{{- if .HasSkip}}
                <p class="start" style="height: {{.Skip}}px;"></p>
{{- end}}
{{- range .Blocks}}
{{- if .HasHeight}}
                <p class="{{.Class}}" style="height: {{.Height}}px;" title="{{.Title}}">{{.Text}}</p>
{{- else}}
                <p class="{{.Class}}" title="{{.Title}}">{{.Text}}</p>
{{- end}}
{{- end}}
              </div>
            </div>
{{- end}}
          </div>
        </article>
{{- end}}
      </section>
    </main>
    <!-- FOOTER -->
    <footer>
      <section>
        <h2>{{.Filename}} &mdash; {{.Generated}}</h2>
        <article>
          <p>This file is available on <a href="https://github.com/psb-2018-2019-apcsp/bhs-calendar/">Github</a> based on this <a href="{{.CSVPath}}">CSV</a>&hellip;</p>
          <pre class="calculations">{{.Calculations}}</pre>
          <hr class="no-pass" />
          <table class="no-pass">
            <tr>
{{- range .NoPass.Header}}
              <th title="{{.Title}}">{{.Text}}</th>
{{- end}}
            </tr>
{{- range .NoPass.Rows}}
            <tr>
{{- range .}}
              <td title="{{.Title}}">{{.Text}}</td>
{{- end}}
            </tr>
{{- end}}
          </table>
          <ul>
            <li><span class="swatch short">&nbsp;</span> &mdash; passing time &lt; 5 minutes</li>
            <li><span class="swatch split">&nbsp;</span> &mdash; split lunch passing time (matched to other passing time for that day in that building)</li>
            <li><span class="swatch question">&nbsp;</span> &mdash; zero-length passing time adjusted by removal from lunch block or preceeding block (matched to other passing time for that day in that building)</li>
          </ul>
        </article>
      </section>
    </footer>
  </body>
</html>
`
