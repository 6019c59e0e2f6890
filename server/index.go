package server

// indexHTML is the single-page form served at /. It posts to the JSON API
// and renders the returned markdown sections as plain text.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Social Media Content Brainstormer</title>
	<style>
		body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
		label { display: block; margin-top: 1rem; font-weight: bold; }
		input, textarea { width: 100%; padding: 0.5rem; margin-top: 0.25rem; box-sizing: border-box; }
		button { margin-top: 1.5rem; padding: 0.6rem 1.5rem; }
		#result { white-space: pre-wrap; margin-top: 2rem; }
		#status { margin-top: 1rem; color: #555; }
	</style>
</head>
<body>
	<h1>Social Media Content Brainstormer</h1>
	<p>Describe your brand positioning and get a full content strategy: flagship, seasonal, and evergreen ideas plus a summary.</p>
	<form id="form">
		<label for="core_value">Core value proposition</label>
		<input id="core_value" name="core_value" required placeholder="What is the primary value your business offers?">

		<label for="target_audience">Target audience</label>
		<input id="target_audience" name="target_audience" required placeholder="Who are you trying to reach and serve?">

		<label for="persona">Brand persona</label>
		<input id="persona" name="persona" required placeholder="What character and image does the brand project?">

		<label for="monetization">Monetization strategy</label>
		<input id="monetization" name="monetization" required placeholder="How does the business generate revenue?">

		<label for="brand_url">Brand website (optional)</label>
		<input id="brand_url" name="brand_url" placeholder="example.com">

		<button type="submit">Generate content ideas</button>
	</form>
	<div id="status"></div>
	<div id="result"></div>
	<script>
		const form = document.getElementById("form");
		form.addEventListener("submit", async (event) => {
			event.preventDefault();
			const status = document.getElementById("status");
			const result = document.getElementById("result");
			status.textContent = "Generating... this can take a few minutes.";
			result.textContent = "";
			const body = Object.fromEntries(new FormData(form));
			try {
				const response = await fetch("/api/v1/brainstorm", {
					method: "POST",
					headers: {"Content-Type": "application/json"},
					body: JSON.stringify(body),
				});
				const payload = await response.json();
				if (!response.ok) {
					status.textContent = "Error: " + payload.error;
					return;
				}
				status.textContent = "Run " + payload.run_id + " complete.";
				result.textContent = payload.markdown;
			} catch (err) {
				status.textContent = "Request failed: " + err;
			}
		});
	</script>
</body>
</html>
`
