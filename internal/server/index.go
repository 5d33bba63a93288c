package server

// indexPage is the interactive front end: a single form that posts to
// /summarize and renders the per-chunk records client-side.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Transcript Digest</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.4rem; }
  form { display: flex; gap: .5rem; margin-bottom: 1.5rem; }
  input[type=url] { flex: 1; padding: .5rem; font-size: 1rem; }
  button { padding: .5rem 1rem; font-size: 1rem; cursor: pointer; }
  .chunk { border: 1px solid #ddd; border-radius: 6px; padding: .75rem 1rem; margin-bottom: .75rem; }
  .chunk .time { font-weight: 600; color: #555; margin-bottom: .5rem; }
  .chunk pre { white-space: pre-wrap; margin: 0; font-family: inherit; }
  .chunk .failed { color: #a00; font-style: italic; }
  .error { color: #a00; }
</style>
</head>
<body>
<h1>Transcript Digest</h1>
<form id="form">
  <input type="url" id="url" placeholder="https://www.youtube.com/watch?v=..." required>
  <button type="submit" id="submit">Summarize</button>
</form>
<div id="status"></div>
<div id="results"></div>
<script>
const form = document.getElementById('form');
const status = document.getElementById('status');
const results = document.getElementById('results');
const submit = document.getElementById('submit');

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  results.innerHTML = '';
  status.textContent = 'Summarizing... this can take a minute.';
  submit.disabled = true;
  try {
    const resp = await fetch('/summarize', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({url: document.getElementById('url').value}),
    });
    const data = await resp.json();
    if (!resp.ok) {
      status.innerHTML = '<span class="error"></span>';
      status.firstChild.textContent = data.error ? data.error.message : 'request failed';
      return;
    }
    status.textContent = data.length ? '' : 'No transcript entries found.';
    for (const rec of data) {
      const div = document.createElement('div');
      div.className = 'chunk';
      const time = document.createElement('div');
      time.className = 'time';
      time.textContent = rec.start_time + ' – ' + rec.end_time;
      div.appendChild(time);
      const body = document.createElement('pre');
      if (rec.summary === null) {
        body.className = 'failed';
        body.textContent = 'Summary unavailable for this section.';
      } else {
        body.textContent = rec.summary;
      }
      div.appendChild(body);
      results.appendChild(div);
    }
  } catch (err) {
    status.innerHTML = '<span class="error">Request failed.</span>';
  } finally {
    submit.disabled = false;
  }
});
</script>
</body>
</html>
`
